// Package main is the entry point for the loopsettings-server application.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CreativeUnicorns/loopsettings"
	"github.com/CreativeUnicorns/loopsettings/api"
	"github.com/CreativeUnicorns/loopsettings/config"
	"github.com/CreativeUnicorns/loopsettings/sink"
)

func main() {
	listenAddr := flag.String("listen-addr", "", "HTTP listen address (overrides LOOPSETTINGS_LISTEN_ADDRESS)")
	flag.Parse()

	bootLogger := loopsettings.NewDefaultLogger()

	cfg, err := config.Parse()
	if err != nil {
		bootLogger.Error("Failed to read configuration", "error", err)
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.ListenAddress = *listenAddr
	}

	logger := newLogger(cfg)
	logger.Info("Loopsettings server starting up...", "storage", cfg.StorageType, "cache", cfg.CacheType)

	store, err := newStorage(cfg)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	cacher, err := newCache(cfg)
	if err != nil {
		logger.Error("Failed to initialize cache", "error", err)
		os.Exit(1)
	}

	ui := sink.NewUIState(logger)

	opts := []loopsettings.Option{
		loopsettings.WithStorage(store),
		loopsettings.WithLogger(logger),
		loopsettings.WithThemeSink(ui),
		loopsettings.WithTimerSink(ui),
		loopsettings.WithNotifications(ui),
		loopsettings.WithCacheTTL(cfg.CacheTTL),
	}
	if cacher != nil {
		opts = append(opts, loopsettings.WithCache(cacher))
		defer func() {
			if err := cacher.Close(); err != nil {
				logger.Error("Failed to close cache", "error", err)
			}
		}()
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 10*time.Second)
	settings, err := loopsettings.Open(initCtx, opts...)
	cancelInit()
	if err != nil {
		logger.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}

	apiServer, err := api.NewServer(api.Config{
		ListenAddress: cfg.ListenAddress,
		Store:         settings,
		UI:            ui,
		Logger:        logger,
	})
	if err != nil {
		logger.Error("Failed to create API server", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case err := <-serverErr:
		logger.Error("API server error", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apiServer.Stop(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	logger.Info("Server exited gracefully")
}
