package preference_test

import (
	"testing"

	"github.com/pranikov/sitekit/internal/domain/preference"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	theme, err := preference.ParseTheme("dark")
	require.NoError(t, err)
	require.Equal(t, preference.ThemeDark, theme)

	_, err = preference.ParseTheme("sepia")
	require.ErrorIs(t, err, preference.ErrInvalidTheme)
}
