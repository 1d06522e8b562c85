// Valuator - Residential Property Price Prediction Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/valuator

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/valuator/internal/api"
	"github.com/tomtom215/valuator/internal/artifact"
	"github.com/tomtom215/valuator/internal/config"
	"github.com/tomtom215/valuator/internal/forecast"
	"github.com/tomtom215/valuator/internal/logging"
	"github.com/tomtom215/valuator/internal/metrics"
	"github.com/tomtom215/valuator/internal/models"
	"github.com/tomtom215/valuator/internal/supervisor"
	"github.com/tomtom215/valuator/internal/supervisor/services"
)

const (
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	metrics.SetAppInfo(models.Version, runtime.Version())

	logging.Info().
		Str("version", models.Version).
		Str("environment", cfg.Server.Environment).
		Str("models_dir", cfg.Model.Dir).
		Msg("Starting Valuator")
	logSettings(cfg)

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	// The bundle must be loaded before the listener opens. A failure here
	// stops the process; the server never answers without a model.
	engine, err := loadEngine(context.Background(), cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("models_dir", cfg.Model.Dir).Msg("Failed to load model artifacts")
	}

	server := newHTTPServer(cfg, newPredictor(cfg, engine))

	tree, err := supervisor.NewSupervisorTree(
		logging.NewSlogLogger(logging.WithComponent("supervisor")),
		supervisor.DefaultTreeConfig(),
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddTelemetryService(services.NewUptimeService(start, services.DefaultUptimeInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, shutdownTimeout, logging.Logger()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Dur("uptime", time.Since(start)).Msg("Valuator stopped")
	if len(unstopped) > 0 {
		os.Exit(1)
	}
}

// logSettings writes the effective tunables at debug level.
func logSettings(cfg *config.Config) {
	logging.Debug().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Dur("timeout", cfg.Server.Timeout).
		Dur("model_load_timeout", cfg.Model.LoadTimeout).
		Int("cache_size", cfg.Model.CacheSize).
		Int("rate_limit_reqs", cfg.Security.RateLimitReqs).
		Dur("rate_limit_window", cfg.Security.RateLimitWindow).
		Bool("rate_limit_disabled", cfg.Security.RateLimitDisabled).
		Strs("cors_origins", cfg.Security.CORSOrigins).
		Msg("Effective settings")
}

// loadEngine builds the engine and loads the bundle from cfg.Model.Dir
// within cfg.Model.LoadTimeout.
func loadEngine(ctx context.Context, cfg *config.Config) (*forecast.Engine, error) {
	logger := logging.Logger()
	engine := forecast.NewEngine(artifact.NewStore(logger), logger)

	ctx, cancel := context.WithTimeout(ctx, cfg.Model.LoadTimeout)
	defer cancel()

	if err := engine.Load(ctx, cfg.Model.Dir); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	return engine, nil
}

// newPredictor puts the prediction cache in front of engine unless
// PREDICTION_CACHE_SIZE is 0.
func newPredictor(cfg *config.Config, engine *forecast.Engine) api.Predictor {
	if cfg.Model.CacheSize == 0 {
		return engine
	}
	logging.Info().Int("size", cfg.Model.CacheSize).Msg("Prediction cache enabled")
	return forecast.NewCachedEngine(engine, cfg.Model.CacheSize)
}

// newHTTPServer wires the router over engine.
func newHTTPServer(cfg *config.Config, engine api.Predictor) *http.Server {
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromConfig(cfg))
	router := api.NewRouter(api.NewHandler(engine), mw)

	// The write deadline sits past the handler timeout so the 503 on
	// timeout still reaches the client.
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       idleTimeout,
	}
}
