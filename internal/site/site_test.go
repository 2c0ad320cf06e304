package site_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/pranikov/sitekit/internal/domain/project"
	"github.com/pranikov/sitekit/internal/localstore"
	"github.com/pranikov/sitekit/internal/remote"
	"github.com/pranikov/sitekit/internal/site"
	"github.com/pranikov/sitekit/internal/sqlite"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	site  *site.Site
	local *localstore.Store
	slots *sqlite.SlotRepository
}

func newFixture(t *testing.T, backend http.Handler, cfg site.Config) fixture {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	slots := sqlite.NewSlotRepository(db)
	local := localstore.New(slots, nil)

	cfg.Remote = remote.New(remote.Config{BaseURL: server.URL, APIKey: "secret"})
	cfg.Local = local
	return fixture{site: site.New(cfg), local: local, slots: slots}
}

func fakeBackend(projectsStatus int) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/projects", func(w http.ResponseWriter, r *http.Request) {
		if projectsStatus != http.StatusOK {
			w.WriteHeader(projectsStatus)
			return
		}
		_, _ = io.WriteString(w, `[{"id":11,"title":"Live","description":"d","image":"i","technologies":["Go"],"category":"web","featured":false}]`)
	})
	mux.HandleFunc("GET /api/contact", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(remote.HeaderAPIKey) != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `[
			{"id":1,"name":"A","email":"a@x","subject":"s","message":"m","createdAt":"2026-10-01"},
			{"id":2,"name":"B","email":"b@x","subject":"s","message":"m","createdAt":"2026-10-02"}
		]`)
	})
	return mux
}

func TestProjects_FallbackOnServerError(t *testing.T) {
	f := newFixture(t, fakeBackend(http.StatusInternalServerError), site.Config{})

	result := f.site.Projects(context.Background())
	require.True(t, result.Fallback)
	require.Error(t, result.Err)
	require.Equal(t, project.Seed(), result.Projects)
	require.Equal(t, "p1", result.Projects[0].ID)
	require.Equal(t, "p2", result.Projects[1].ID)
}

func TestProjects_FallbackOnTransportError(t *testing.T) {
	s := site.New(site.Config{Remote: remote.New(remote.Config{BaseURL: "http://127.0.0.1:1"})})

	result := s.Projects(context.Background())
	require.True(t, result.Fallback)
	require.Len(t, result.Projects, 2)
}

func TestProjects_Remote(t *testing.T) {
	f := newFixture(t, fakeBackend(http.StatusOK), site.Config{})

	result := f.site.Projects(context.Background())
	require.False(t, result.Fallback)
	require.NoError(t, result.Err)
	require.Len(t, result.Projects, 1)
	require.Equal(t, "11", result.Projects[0].ID)
}

func TestListContactMessages_ReadAtCallTime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fakeBackend(http.StatusOK), site.Config{})

	messages, err := f.site.ListContactMessages(ctx)
	require.NoError(t, err)
	require.False(t, messages[0].Read)
	require.False(t, messages[1].Read)

	require.NoError(t, f.site.MarkMessageRead(ctx, "2"))

	messages, err = f.site.ListContactMessages(ctx)
	require.NoError(t, err)
	require.False(t, messages[0].Read)
	require.True(t, messages[1].Read)
	require.True(t, f.site.ReadMessageIDs(ctx).Has("2"))
}

func TestLocalDelegation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fakeBackend(http.StatusOK), site.Config{})

	services, err := f.site.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, content.SeedServices(), services)

	require.NoError(t, f.site.SaveTheme(ctx, preference.ThemeDark))
	theme, err := f.site.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, preference.ThemeDark, theme)

	require.NoError(t, f.site.SetLoggedIn(ctx, true))
	loggedIn, err := f.site.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.True(t, loggedIn)
}

func TestSendContactMessage_Validation(t *testing.T) {
	f := newFixture(t, fakeBackend(http.StatusOK), site.Config{})

	_, err := f.site.SendContactMessage(context.Background(), messageInput(""))
	require.Error(t, err)
}

func TestUploadImage_Delegates(t *testing.T) {
	backend := http.NewServeMux()
	backend.HandleFunc("POST /api/images", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":1,"url":"https://cdn/x.png"}`)
	})
	f := newFixture(t, backend, site.Config{})

	url, err := f.site.UploadImage(context.Background(), "x.png", strings.NewReader("x"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn/x.png", url)
}

func TestBackupFilename(t *testing.T) {
	require.Equal(t, "pranikov_backup_2026-10-19.json", site.BackupFilename(time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)))
}

func TestNew_DefaultBackups(t *testing.T) {
	s := site.New(site.Config{Backups: memfs.New()})
	require.NotNil(t, s)
}
