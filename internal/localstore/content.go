package localstore

import (
	"context"

	"github.com/pranikov/sitekit/internal/domain/analytics"
	"github.com/pranikov/sitekit/internal/domain/content"
)

// Services returns the stored services, seeding them on first access.
func (s *Store) Services(ctx context.Context) ([]content.Service, error) {
	return loadJSON(ctx, s, KeyServices, content.SeedServices)
}

// SaveServices replaces the stored services.
func (s *Store) SaveServices(ctx context.Context, services []content.Service) error {
	if services == nil {
		services = []content.Service{}
	}
	return saveJSON(ctx, s, KeyServices, services)
}

// About returns the stored about-page content, seeding it on first access.
func (s *Store) About(ctx context.Context) (content.About, error) {
	return loadJSON(ctx, s, KeyAbout, content.SeedAbout)
}

// SaveAbout replaces the stored about-page content.
func (s *Store) SaveAbout(ctx context.Context, about content.About) error {
	return saveJSON(ctx, s, KeyAbout, about)
}

// Analytics returns the stored analytics. A fresh record with a generated
// visit history is persisted when none exists.
func (s *Store) Analytics(ctx context.Context) (analytics.Data, error) {
	return loadJSON(ctx, s, KeyAnalytics, func() analytics.Data {
		return analytics.New(s.now(), s.rng)
	})
}

// SaveAnalytics replaces the stored analytics.
func (s *Store) SaveAnalytics(ctx context.Context, data analytics.Data) error {
	return saveJSON(ctx, s, KeyAnalytics, data)
}
