package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"
)

const maxPayloadLog = 2048

// callLoggingMiddleware records one entry per handled request. Failed tool
// calls are logged at Warn so admin errors such as a rejected upload show up
// without debug logging; payloads are only rendered at Debug.
func callLoggingMiddleware(logger *slog.Logger, direction string) sdkmcp.Middleware {
	return func(next sdkmcp.MethodHandler) sdkmcp.MethodHandler {
		return func(ctx context.Context, method string, req sdkmcp.Request) (sdkmcp.Result, error) {
			start := time.Now()
			result, err := next(ctx, method, req)
			if strings.HasPrefix(method, "notifications/") {
				return result, err
			}

			attrs := []any{
				"direction", direction,
				"method", method,
				"session_id", safeSessionID(req),
				"duration", time.Since(start).Round(time.Microsecond),
			}
			if tool := toolName(method, req); tool != "" {
				attrs = append(attrs, "tool", tool)
			}

			switch {
			case err != nil:
				logger.Warn("mcp request failed", append(attrs, "error", err)...)
			case toolFailed(result):
				logger.Warn("mcp tool failed", append(attrs, "result", formatPayload(result))...)
			case logger.Enabled(ctx, slog.LevelDebug):
				logger.Debug("mcp request", append(attrs,
					"params", formatPayload(safeParams(req)),
					"result", formatPayload(result),
				)...)
			}
			return result, err
		}
	}
}

func toolName(method string, req sdkmcp.Request) string {
	if method != "tools/call" {
		return ""
	}
	data, err := json.Marshal(safeParams(req))
	if err != nil {
		return ""
	}
	return gjson.GetBytes(data, "name").String()
}

func toolFailed(result sdkmcp.Result) bool {
	res, ok := result.(*sdkmcp.CallToolResult)
	return ok && res != nil && res.IsError
}

func safeSessionID(req sdkmcp.Request) string {
	if req == nil {
		return ""
	}
	defer func() { recover() }()
	session := req.GetSession()
	if session == nil {
		return ""
	}
	return session.ID()
}

func safeParams(req sdkmcp.Request) any {
	if req == nil {
		return nil
	}
	defer func() { recover() }()
	return req.GetParams()
}

// formatPayload renders payload as JSON, truncating long payloads such as
// base64 image uploads.
func formatPayload(payload any) string {
	if payload == nil {
		return "<nil>"
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%T", payload)
	}
	if len(data) > maxPayloadLog {
		return string(data[:maxPayloadLog]) + "...(truncated)"
	}
	return string(data)
}
