package site

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/message"
	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/pranikov/sitekit/internal/domain/project"
)

// Remote is the backend API used for projects, messages and images.
type Remote interface {
	ListProjects(ctx context.Context) ([]project.Project, error)
	CreateProject(ctx context.Context, in project.Input) (project.Project, error)
	UpdateProject(ctx context.Context, id string, patch project.Patch) (project.Project, error)
	DeleteProject(ctx context.Context, id string) error
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
	SendContactMessage(ctx context.Context, in message.Input) (message.ContactMessage, error)
	ListContactMessages(ctx context.Context, read *message.ReadSet) ([]message.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
}

// Local is the on-device store for content the backend does not hold.
type Local interface {
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
	ReadMessageIDs(ctx context.Context) *message.ReadSet
	MarkMessageRead(ctx context.Context, id string) error
}

// Config wires a Site.
type Config struct {
	Remote Remote
	Local  Local
	// Backups receives exported backup files. Defaults to an in-memory filesystem.
	Backups billy.Filesystem
	Logger  *slog.Logger
	Now     func() time.Time
}

// Site is the single entry point for site data. Each entity has one source
// of truth: projects, messages and images live on the backend; services,
// about content, analytics, theme and the login flag live locally.
type Site struct {
	remote  Remote
	local   Local
	backups billy.Filesystem
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Site.
func New(cfg Config) *Site {
	s := &Site{
		remote:  cfg.Remote,
		local:   cfg.Local,
		backups: cfg.Backups,
		logger:  cfg.Logger,
		now:     cfg.Now,
	}
	if s.backups == nil {
		s.backups = memfs.New()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ProjectsResult is the outcome of a project listing. When the backend
// could not be used, Projects holds the seed projects, Fallback is set and
// Err records why.
type ProjectsResult struct {
	Projects []project.Project
	Fallback bool
	Err      error
}

// Projects lists projects, degrading to the seed projects on any backend
// failure. Callers that must not show seed data check Err.
func (s *Site) Projects(ctx context.Context) ProjectsResult {
	projects, err := s.remote.ListProjects(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch projects from backend, using seed data", "error", err)
		return ProjectsResult{Projects: project.Seed(), Fallback: true, Err: err}
	}
	return ProjectsResult{Projects: projects}
}

// SaveProject creates a project on the backend.
func (s *Site) SaveProject(ctx context.Context, in project.Input) (project.Project, error) {
	return s.remote.CreateProject(ctx, in)
}

// UpdateProject updates a project on the backend.
func (s *Site) UpdateProject(ctx context.Context, id string, patch project.Patch) (project.Project, error) {
	return s.remote.UpdateProject(ctx, id, patch)
}

// DeleteProject deletes a project on the backend.
func (s *Site) DeleteProject(ctx context.Context, id string) error {
	return s.remote.DeleteProject(ctx, id)
}

// UploadImage uploads an image and returns its public URL.
func (s *Site) UploadImage(ctx context.Context, filename string, file io.Reader) (string, error) {
	return s.remote.UploadImage(ctx, filename, file)
}

// SendContactMessage submits a contact form message.
func (s *Site) SendContactMessage(ctx context.Context, in message.Input) (message.ContactMessage, error) {
	return s.remote.SendContactMessage(ctx, in)
}

// ListContactMessages lists messages, flagging those marked read on this
// device at call time.
func (s *Site) ListContactMessages(ctx context.Context) ([]message.ContactMessage, error) {
	return s.remote.ListContactMessages(ctx, s.local.ReadMessageIDs(ctx))
}

// DeleteContactMessage deletes a message on the backend.
func (s *Site) DeleteContactMessage(ctx context.Context, id string) error {
	return s.remote.DeleteContactMessage(ctx, id)
}

// ReadMessageIDs returns the IDs of messages marked read on this device.
func (s *Site) ReadMessageIDs(ctx context.Context) *message.ReadSet {
	return s.local.ReadMessageIDs(ctx)
}

// MarkMessageRead marks a message read on this device.
func (s *Site) MarkMessageRead(ctx context.Context, id string) error {
	return s.local.MarkMessageRead(ctx, id)
}

func (s *Site) Services(ctx context.Context) ([]content.Service, error) {
	return s.local.Services(ctx)
}

func (s *Site) SaveServices(ctx context.Context, services []content.Service) error {
	return s.local.SaveServices(ctx, services)
}

func (s *Site) About(ctx context.Context) (content.About, error) {
	return s.local.About(ctx)
}

func (s *Site) SaveAbout(ctx context.Context, about content.About) error {
	return s.local.SaveAbout(ctx, about)
}

func (s *Site) Analytics(ctx context.Context) (analytics.Data, error) {
	return s.local.Analytics(ctx)
}

func (s *Site) SaveAnalytics(ctx context.Context, data analytics.Data) error {
	return s.local.SaveAnalytics(ctx, data)
}

func (s *Site) Theme(ctx context.Context) (preference.Theme, error) {
	return s.local.Theme(ctx)
}

func (s *Site) SaveTheme(ctx context.Context, theme preference.Theme) error {
	return s.local.SaveTheme(ctx, theme)
}

// IsLoggedIn reports the admin-panel UI flag. It is not an authorization
// check.
func (s *Site) IsLoggedIn(ctx context.Context) (bool, error) {
	return s.local.IsLoggedIn(ctx)
}

func (s *Site) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	return s.local.SetLoggedIn(ctx, loggedIn)
}
