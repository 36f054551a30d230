// Bills BFF - Accounts and Receipt-Parser Aggregation API
// Copyright 2026 Manjula Rathnayaka (manjulaRathnayaka)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/manjulaRathnayaka/choreo-tutorial-hevayo

// Package main is the entry point for the Bills BFF server.
//
// The BFF aggregates two upstream services behind a single HTTP API for the
// bills web client: the accounts service (bill storage and CRUD) and the
// bill-parser service (receipt image OCR). The server holds no state of its
// own; every request is validated, forwarded upstream, and the response
// shaped for the frontend.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Required environment:
//   - ACCOUNTS_API_URL: base URL of the accounts service
//   - BILL_PARSER_API_URL: base URL of the bill-parser service
//
// Optional:
//   - PORT: HTTP listen port (default 3001)
//   - ENVIRONMENT: development or production
//   - LOG_LEVEL, LOG_FORMAT: zerolog settings
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits up to 10 seconds for in-flight
// requests to complete. In-flight upstream calls run to their own timeout.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/manjulaRathnayaka/choreo-tutorial-hevayo/docs" // Import generated swagger docs
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/api"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/config"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/logging"
	"github.com/manjulaRathnayaka/choreo-tutorial-hevayo/internal/upstream"
)

// @title Bills BFF API
// @version 1.0
// @description Backend-For-Frontend aggregating the accounts service and the receipt parser service for the bills web client.
// @BasePath /
func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Default logger; config not yet available
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("accounts_url", cfg.Accounts.URL).
		Str("parser_url", cfg.Parser.URL).
		Msg("Starting Bills BFF")

	// Upstream clients are constructed once and injected into the handlers
	accounts := upstream.NewAccountsClient(cfg.Accounts)
	parser := upstream.NewParserClient(cfg.Parser)

	handler := api.NewHandler(accounts, parser, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}

	logging.Info().Msg("Server stopped")
}
