package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PouchSim_Go/internal/bootstrap"
	"github.com/osse101/PouchSim_Go/internal/config"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/server"
	"github.com/osse101/PouchSim_Go/internal/session"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		logger.Error("Fatal error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	catalog, err := bootstrap.LoadCatalog(ctx, cfg.ItemsConfigPath)
	if err != nil {
		return err
	}

	events, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	sessionService := session.NewService(catalog, storage.Snapshots, events.Bus, session.Options{
		CacheSize:    cfg.SessionCacheSize,
		TTL:          cfg.SessionTTL,
		HistoryDepth: cfg.SessionHistoryDepth,
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		Environment:    cfg.Environment,
	}, storage.HealthPool(), sessionService, catalog, events.Hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var serveErr error
	select {
	case <-stop:
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Events:  events,
		Storage: storage,
	})

	return serveErr
}
