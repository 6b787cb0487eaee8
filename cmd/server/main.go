// Command server runs the CSV query HTTP API.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"csvq/internal/config"
	"csvq/internal/core"
	"csvq/internal/logging"
	"csvq/internal/web"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"max_documents", cfg.Query.MaxDocuments,
		"max_document_size", cfg.Query.MaxDocumentSize,
		"audit_enabled", cfg.Database.Enabled(),
	)

	ctx := context.Background()

	// The audit database is optional: without DATABASE_URL the service
	// runs purely in memory.
	var db core.DBTX
	if cfg.Database.Enabled() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			slog.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}

		poolConfig.MaxConns = int32(cfg.Database.MaxConns)
		poolConfig.MinConns = int32(cfg.Database.MinConns)
		poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
		poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			slog.Error("failed to ping database", "error", err)
			os.Exit(1)
		}

		if err := core.EnsureSchema(ctx, pool); err != nil {
			slog.Error("failed to ensure audit schema", "error", err)
			os.Exit(1)
		}

		if u, err := url.Parse(cfg.Database.URL); err == nil {
			slog.Info("audit log enabled", "database", strings.TrimPrefix(u.Path, "/"))
		} else {
			slog.Info("audit log enabled")
		}

		db = pool
	}

	service := core.NewService(db, cfg)
	server := web.NewServer(service, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
