// Package main is the entry point for the Colombian holiday API server.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/zapponejosh/festivos-api/internal/api"
	"github.com/zapponejosh/festivos-api/internal/config"
	"github.com/zapponejosh/festivos-api/internal/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	// Log startup info
	log.Info("starting festivos API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	handlers := api.NewHandlers(cfg)
	srv := api.NewServer(cfg, api.SetupRoutes(handlers, log))

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Error("failed to listen", slog.String("addr", srv.Addr), slog.Any("error", err))
		os.Exit(1)
	}

	// Cancelled on SIGINT/SIGTERM to drain connections cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := api.Serve(ctx, srv, ln, cfg.ShutdownTimeout, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped")
}
