package preference

import (
	"errors"
	"fmt"
)

// ErrInvalidTheme indicates a theme outside the supported set.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the site colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no preference was stored.
const DefaultTheme = ThemeLight

// ParseTheme validates a theme name.
func ParseTheme(value string) (Theme, error) {
	switch Theme(value) {
	case ThemeLight, ThemeDark:
		return Theme(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
}
