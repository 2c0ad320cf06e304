package localstore

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pranikov/sitekit/internal/domain/preference"
)

// Theme returns the stored theme. Unknown stored values read as the default.
func (s *Store) Theme(ctx context.Context) (preference.Theme, error) {
	raw, err := s.loadRaw(ctx, KeyTheme, string(preference.DefaultTheme))
	if err != nil {
		return "", err
	}
	theme, err := preference.ParseTheme(raw)
	if err != nil {
		s.logger.Warn("ignoring stored theme", "value", raw)
		return preference.DefaultTheme, nil
	}
	return theme, nil
}

// SaveTheme stores theme.
func (s *Store) SaveTheme(ctx context.Context, theme preference.Theme) error {
	if _, err := preference.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("saving %s: %w", KeyTheme, err)
	}
	return nil
}

// IsLoggedIn reports the stored admin-panel flag. The flag only drives UI
// state; privileged calls are authorized by the backend.
func (s *Store) IsLoggedIn(ctx context.Context) (bool, error) {
	raw, err := s.loadRaw(ctx, KeyAuth, "false")
	if err != nil {
		return false, err
	}
	return raw == "true", nil
}

// SetLoggedIn stores the admin-panel flag.
func (s *Store) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	if err := s.repo.Set(ctx, KeyAuth, strconv.FormatBool(loggedIn)); err != nil {
		return fmt.Errorf("saving %s: %w", KeyAuth, err)
	}
	return nil
}
