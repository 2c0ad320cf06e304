package transport

import (
	"net/http"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// SessionTimeout closes idle MCP sessions.
const SessionTimeout = 30 * time.Minute

// NewHandler routes the MCP endpoint and an unauthenticated health check.
// A nil authMiddleware leaves /mcp open.
func NewHandler(server *sdkmcp.Server, authMiddleware func(http.Handler) http.Handler) http.Handler {
	var mcpHandler http.Handler = sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			SessionTimeout: SessionTimeout,
		},
	)
	if authMiddleware != nil {
		mcpHandler = authMiddleware(mcpHandler)
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/mcp/", mcpHandler)
	mux.HandleFunc("GET /health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
