package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pranikov/sitekit/internal/repository"
)

// Slot keys.
const (
	KeyMessageReadIDs = "nexus_message_read_ids"
	KeyAnalytics      = "nexus_analytics"
	KeyTheme          = "nexus_theme"
	KeyAuth           = "nexus_auth"
	KeyServices       = "nexus_services"
	KeyAbout          = "nexus_about"
)

// ErrCorruptSlot indicates a slot whose stored value cannot be decoded.
var ErrCorruptSlot = errors.New("corrupt slot")

// Store persists site content that lives only on this machine.
// Seeded slots are written on first read so later reads return the
// stored value.
type Store struct {
	repo   repository.SlotRepository
	logger *slog.Logger
	now    func() time.Time
	rng    *rand.Rand

	// guards read-modify-write sequences
	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for generated analytics history.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand overrides the random source used for generated analytics history.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) { s.rng = rng }
}

// New creates a Store backed by repo.
func New(repo repository.SlotRepository, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{repo: repo, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// loadRaw returns the stored string, or seeds the slot with seed when it is
// empty and returns seed.
func (s *Store) loadRaw(ctx context.Context, key, seed string) (string, error) {
	raw, err := s.repo.Get(ctx, key)
	if err == nil && raw != "" {
		return raw, nil
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("loading %s: %w", key, err)
	}

	if err := s.repo.Set(ctx, key, seed); err != nil {
		return "", fmt.Errorf("seeding %s: %w", key, err)
	}
	s.logger.Debug("seeded slot", "key", key)
	return seed, nil
}

func loadJSON[T any](ctx context.Context, s *Store, key string, seed func() T) (T, error) {
	var zero T

	raw, err := s.repo.Get(ctx, key)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return zero, fmt.Errorf("loading %s: %w", key, err)
	}
	if err != nil || raw == "" {
		value := seed()
		if err := saveJSON(ctx, s, key, value); err != nil {
			return zero, fmt.Errorf("seeding %s: %w", key, err)
		}
		s.logger.Debug("seeded slot", "key", key)
		return value, nil
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return zero, fmt.Errorf("%w: %s: %v", ErrCorruptSlot, key, err)
	}
	return value, nil
}

func saveJSON[T any](ctx context.Context, s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.repo.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
