package mcp

import (
	"context"
	"io"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/pranikov/sitekit/internal/domain/project"
	"github.com/pranikov/sitekit/internal/site"
)

// Site defines the site operations exposed as tools.
type Site interface {
	Projects(ctx context.Context) site.ProjectsResult
	SaveProject(ctx context.Context, in project.Input) (project.Project, error)
	UpdateProject(ctx context.Context, id string, patch project.Patch) (project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
	SendContactMessage(ctx context.Context, in message.Input) (message.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]message.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
	MarkMessageRead(ctx context.Context, id string) error
	Services(ctx context.Context) ([]content.Service, error)
	SaveServices(ctx context.Context, services []content.Service) error
	About(ctx context.Context) (content.About, error)
	SaveAbout(ctx context.Context, about content.About) error
	Analytics(ctx context.Context) (analytics.Data, error)
	SaveAnalytics(ctx context.Context, data analytics.Data) error
	Theme(ctx context.Context) (preference.Theme, error)
	SaveTheme(ctx context.Context, theme preference.Theme) error
	IsLoggedIn(ctx context.Context) (bool, error)
	SetLoggedIn(ctx context.Context, loggedIn bool) error
	ExportAll(ctx context.Context) (string, error)
	ImportAll(ctx context.Context, data []byte) error
}

// Config contains server configuration.
type Config struct {
	Site    Site
	Version string
	Logger  *slog.Logger
}

const serverInstructions = `pranikov-site manages the Pranikov marketing site content.

Sources of truth:
- Projects, contact messages and images live on the site backend. list_projects falls back to
  sample projects when the backend is unreachable and reports fallback=true.
- Services, about content, analytics, theme and the admin login flag live in the local store.
- Message read state is local to this store and is not shared with other devices.

Backups: export_all writes pranikov_backup_<date>.json to the backup directory; import_all restores
services, about and analytics from such a document.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "pranikov-site",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	server.AddReceivingMiddleware(callLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(callLoggingMiddleware(logger, "outbound"))

	registerTools(server, cfg.Site)

	return server
}
