package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/pranikov/sitekit/internal/config"
	"github.com/pranikov/sitekit/internal/localstore"
	"github.com/pranikov/sitekit/internal/remote"
	"github.com/pranikov/sitekit/internal/site"
	"github.com/pranikov/sitekit/internal/sqlite"
	"github.com/spf13/cobra"
)

// app holds state shared by subcommands once configuration is loaded.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	closers    []io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "pranikov",
		Short:        "Pranikov site data tooling",
		Long:         "pranikov serves the Pranikov site data over MCP and exports or imports site backups.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.PathEnv+")")

	root.AddCommand(newServeCmd(a), newExportCmd(a), newImportCmd(a))
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	a.cfg = cfg

	// Stdout carries JSON-RPC in stdio mode and command output otherwise.
	logWriter := io.Writer(os.Stderr)
	if cmd.Name() == "serve" && cfg.Transport.Mode == "http" {
		logWriter = os.Stdout
	}
	if cfg.Log.Path != "" {
		file, err := openCappedFile(cfg.Log.Path, int64(cfg.Log.MaxBytes()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			a.closers = append(a.closers, file)
			logWriter = file
		}
	}
	a.logger = slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i].Close()
	}
	a.closers = nil
}

// openSite opens the local store and wires it with the backend client.
func (a *app) openSite(backups billy.Filesystem) (*site.Site, error) {
	if err := ensureDBDir(a.cfg.DB.Path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(a.cfg.DB.Path)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db)

	if err := db.RunMigrations(); err != nil {
		return nil, err
	}

	client := remote.New(remote.Config{
		BaseURL:    a.cfg.API.BaseURL,
		APIKey:     a.cfg.API.Key,
		HTTPClient: &http.Client{Timeout: a.cfg.API.Timeout},
		Logger:     a.logger.With("component", "remote"),
	})
	a.logger.Debug("site backend", "base_url", client.BaseURL(), "api_key_set", a.cfg.API.Key != "")
	local := localstore.New(sqlite.NewSlotRepository(db), a.logger.With("component", "localstore"))

	return site.New(site.Config{
		Remote:  client,
		Local:   local,
		Backups: backups,
		Logger:  a.logger.With("component", "site"),
	}), nil
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
