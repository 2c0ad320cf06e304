package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestEnsureDBDir(t *testing.T) {
	require.NoError(t, ensureDBDir(":memory:"))
	require.NoError(t, ensureDBDir("local.db"))

	dir := filepath.Join(t.TempDir(), "nested", "data")
	require.NoError(t, ensureDBDir(filepath.Join(dir, "site.db")))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestCappedFile_KeepsNewestBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "server.log")
	const limit = 600
	file, err := openCappedFile(path, limit)
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := file.Write(bytes.Repeat([]byte{byte('a' + i)}, 100))
		require.NoError(t, err)
	}
	require.NoError(t, file.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, limit*5/6)
	require.True(t, bytes.HasSuffix(data, bytes.Repeat([]byte("g"), 100)))
	require.NotContains(t, string(data), "a")
}

func TestCappedFile_TrimsOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("x"), 1000), 0o644))

	file, err := openCappedFile(path, 120)
	require.NoError(t, err)
	require.NoError(t, file.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(100), info.Size())

	_, err = openCappedFile(path, 0)
	require.Error(t, err)
}

func TestReadBackup_Stdin(t *testing.T) {
	data, err := readBackup(strings.NewReader(`{"services":[]}`), "-")
	require.NoError(t, err)
	require.Equal(t, `{"services":[]}`, string(data))

	_, err = readBackup(nil, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestImportCommand_InvalidDocument(t *testing.T) {
	t.Setenv("PRANIKOV_CONFIG_PATH", "")
	t.Setenv("PRANIKOV_DB_PATH", filepath.Join(t.TempDir(), "site.db"))

	backup := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(backup, []byte("{"), 0o644))

	a := &app{}
	defer a.close()
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"import", backup})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.Error(t, cmd.Execute())
}

func TestImportCommand_RestoresServices(t *testing.T) {
	t.Setenv("PRANIKOV_CONFIG_PATH", "")
	t.Setenv("PRANIKOV_DB_PATH", filepath.Join(t.TempDir(), "site.db"))

	backup := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(backup, []byte(`{"services":[{"id":"s9","title":"Audit","description":"","icon":"Shield","features":[]}]}`), 0o644))

	a := &app{}
	defer a.close()
	cmd := newRootCmd(a)
	out := &bytes.Buffer{}
	cmd.SetArgs([]string{"import", backup})
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "import complete")

	s, err := a.openSite(nil)
	require.NoError(t, err)
	services, err := s.Services(t.Context())
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.Equal(t, "Audit", services[0].Title)
}
