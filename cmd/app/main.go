package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apiarygames/hivecore/internal/bootstrap"
	"github.com/apiarygames/hivecore/internal/config"
	"github.com/apiarygames/hivecore/internal/database"
	"github.com/apiarygames/hivecore/internal/handler"
	"github.com/apiarygames/hivecore/internal/server"
)

// version is overridden at build time via -ldflags
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	dbPool, err := database.NewPool(
		cfg.GetDBConnString(),
		config.DefaultDBMaxConns,
		config.DefaultDBMaxIdleTime,
		config.DefaultDBMaxLifetime,
	)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(repos, cfg.DrawCooldown)

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, services)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		dbPool.Close()
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, srv, dbPool)
}
