package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/render"
	"github.com/Belphemur/ShowSearch/internal/web"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

// serve runs the web front-end until SIGINT or SIGTERM.
func serve() error {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("tvmaze_base_url", cfg.TVMazeBaseURL).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Uint("circuit_breaker_threshold", cfg.CircuitBreaker.FailureThreshold).
		Msg("Application started with configuration")

	sentryEnabled := cfg.Sentry.DSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
			sentryEnabled = false
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	directory := client.NewClient(cfg)
	defer directory.Close()

	renderer, err := render.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	router := web.NewRouter(directory, renderer, web.Options{Sentry: sentryEnabled})
	server := web.NewHTTPServer(cfg.Server.Address, cfg.Server.Port, router)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("Starting HTTP server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve HTTP: %w", err)
		}
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		}
	}

	logger.Info().Msg("Server stopped gracefully")
	return nil
}
