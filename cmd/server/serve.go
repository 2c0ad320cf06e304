package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pranikov/sitekit/internal/mcp"
	"github.com/pranikov/sitekit/internal/transport"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve site data tools over MCP",
		Long: `serve exposes the site data layer as MCP tools, over stdio or streamable
HTTP depending on transport.mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSite(osfs.New(a.cfg.Backup.Dir))
			if err != nil {
				a.logger.Error("failed to open site", "error", err)
				return err
			}

			mcpServer := mcp.NewServer(mcp.Config{
				Site:    s,
				Version: version,
				Logger:  a.logger.With("component", "mcp"),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if a.cfg.Transport.Mode == "stdio" {
				return runStdioMode(ctx, a.logger, mcpServer)
			}
			addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
			return runHTTPMode(ctx, a.logger, mcpServer, addr, a.cfg.Auth.Token)
		},
	}
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or ctx is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server, addr, token string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport.NewHandler(mcpServer, transport.AuthMiddleware(token)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
