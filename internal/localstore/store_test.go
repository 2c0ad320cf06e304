package localstore_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/pranikov/sitekit/internal/localstore"
	"github.com/pranikov/sitekit/internal/repository"
	"github.com/pranikov/sitekit/internal/repository/mocks"
	"github.com/pranikov/sitekit/internal/sqlite"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...localstore.Option) (*localstore.Store, *sqlite.SlotRepository) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewSlotRepository(db)
	return localstore.New(repo, nil, opts...), repo
}

func TestStore_SeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)

	services, err := store.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, content.SeedServices(), services)

	about, err := store.About(ctx)
	require.NoError(t, err)
	require.Equal(t, content.SeedAbout(), about)

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, preference.ThemeLight, theme)

	loggedIn, err := store.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)

	_, err = store.Analytics(ctx)
	require.NoError(t, err)

	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		localstore.KeyServices,
		localstore.KeyAbout,
		localstore.KeyTheme,
		localstore.KeyAuth,
		localstore.KeyAnalytics,
	}, keys)

	// Second read is served from the slot
	again, err := store.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, services, again)
}

func TestStore_EditsAreDurable(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	services := []content.Service{{ID: "s9", Title: "Audit", Features: []string{"One"}}}
	require.NoError(t, store.SaveServices(ctx, services))

	got, err := store.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, services, got)

	about := content.SeedAbout()
	about.Mission = "Updated"
	require.NoError(t, store.SaveAbout(ctx, about))

	gotAbout, err := store.About(ctx)
	require.NoError(t, err)
	require.Equal(t, "Updated", gotAbout.Mission)
}

func TestStore_SaveEmptyServices(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, store.SaveServices(ctx, nil))
	raw, err := repo.Get(ctx, localstore.KeyServices)
	require.NoError(t, err)
	require.Equal(t, "[]", raw)

	services, err := store.Services(ctx)
	require.NoError(t, err)
	require.Empty(t, services)
}

func TestStore_AnalyticsPersistedOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	store, _ := newTestStore(t,
		localstore.WithClock(func() time.Time { return now }),
		localstore.WithRand(rand.New(rand.NewPCG(7, 7))),
	)

	first, err := store.Analytics(ctx)
	require.NoError(t, err)
	require.Len(t, first.VisitHistory, analytics.HistoryDays)
	require.Equal(t, "2026-10-19", first.VisitHistory[6].Date)

	second, err := store.Analytics(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first.PageViews["home"] = 3
	first.ThemeUsage.Dark = 1
	require.NoError(t, store.SaveAnalytics(ctx, first))

	third, err := store.Analytics(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, third.PageViews["home"])
	require.Equal(t, 1, third.ThemeUsage.Dark)
}

func TestStore_Theme(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, store.SaveTheme(ctx, preference.ThemeDark))
	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, preference.ThemeDark, theme)

	raw, err := repo.Get(ctx, localstore.KeyTheme)
	require.NoError(t, err)
	require.Equal(t, "dark", raw)

	require.ErrorIs(t, store.SaveTheme(ctx, "sepia"), preference.ErrInvalidTheme)

	require.NoError(t, repo.Set(ctx, localstore.KeyTheme, "sepia"))
	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, preference.ThemeLight, theme)
}

func TestStore_LoggedIn(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, store.SetLoggedIn(ctx, true))
	loggedIn, err := store.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.True(t, loggedIn)

	raw, err := repo.Get(ctx, localstore.KeyAuth)
	require.NoError(t, err)
	require.Equal(t, "true", raw)

	require.NoError(t, store.SetLoggedIn(ctx, false))
	loggedIn, err = store.IsLoggedIn(ctx)
	require.NoError(t, err)
	require.False(t, loggedIn)
}

func TestStore_CorruptSlot(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	require.NoError(t, repo.Set(ctx, localstore.KeyAbout, "{not json"))
	_, err := store.About(ctx)
	require.ErrorIs(t, err, localstore.ErrCorruptSlot)
}

func TestStore_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")

	repo := &mocks.SlotRepository{}
	repo.On("Get", ctx, localstore.KeyServices).Return("", repository.ErrNotFound)
	repo.On("Set", ctx, localstore.KeyServices, mock.Anything).Return(boom)

	store := localstore.New(repo, nil)
	_, err := store.Services(ctx)
	require.ErrorIs(t, err, boom)
	repo.AssertExpectations(t)
}
