// Link-Lab - Graph-Based Movie Recommendation Service
// Copyright 2026 Muhammad Ahmad Amin
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/muhammad-ahmad-amin/Link-Lab

// Command server runs the recommendation HTTP service.
//
// Startup order: configuration, logging, engine, optional sample data or
// snapshot restore, HTTP listener. SIGINT or SIGTERM triggers a graceful
// shutdown that drains in-flight requests and, when configured, saves a
// user-data snapshot.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammad-ahmad-amin/Link-Lab/internal/api"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/config"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/engine"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/logging"
	"github.com/muhammad-ahmad-amin/Link-Lab/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Msg("starting linklab")

	eng, err := engine.New(cfg.Engine)
	if err != nil {
		logging.Fatal().Err(err).Msg("build engine")
	}

	if cfg.API.SeedSampleData {
		if err := eng.InitializeSampleData(); err != nil {
			logging.Fatal().Err(err).Msg("seed sample data")
		}
		logging.Info().Msg("sample data seeded")
	}
	if cfg.Store.LoadOnStartup {
		switch err := eng.LoadUserData(cfg.Store.Path); {
		case err == nil:
			logging.Info().Str("path", cfg.Store.Path).Msg("user data restored")
		case errors.Is(err, store.ErrNoSnapshot):
			logging.Info().Str("path", cfg.Store.Path).Msg("no snapshot to restore")
		default:
			logging.Fatal().Err(err).Msg("restore user data")
		}
	}
	eng.LogStats()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewServer(eng, cfg.API).Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("http server failed")
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("shutdown incomplete")
	}

	if cfg.Store.SaveOnShutdown {
		if err := eng.SaveUserData(cfg.Store.Path); err != nil {
			logging.Error().Err(err).Msg("save user data")
		}
	}
	logging.Info().Msg("stopped")
}
