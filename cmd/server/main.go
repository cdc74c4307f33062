// FoodieBot - Conversational AI Food Recommendation System
// Copyright 2026 Anushka (Anushka-200617)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Anushka-200617/foodiebot-ai-recommendation-system

// Package main is the entry point for the FoodieBot server.
//
// FoodieBot is a conversational food recommendation service: each chat
// message is sentiment-analyzed, scored for purchase interest, and
// answered with recommendations fused from five candidate generators.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config.yaml, and
//     environment variables (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Product store: SQLite (pure-Go driver) or in-memory, optionally
//     seeded with the built-in catalog
//  4. Core engines: sentiment analyzer, interest scorer, recommender
//     with its five generators
//  5. HTTP server: Chi REST API plus Prometheus metrics
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, waits for in-flight requests up to the
// configured timeout, then closes the store.
//
// # Example Usage
//
// Development with the in-memory catalog:
//
//	export DATABASE_DRIVER=memory
//	export LOGGING_FORMAT=console
//	./foodiebot
//
// Production with SQLite persistence:
//
//	export DATABASE_PATH=/data/foodiebot.db
//	export SERVER_PORT=8000
//	./foodiebot
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/api"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/config"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/logging"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/recommend/generators"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/scoring"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/sentiment"
	"github.com/Anushka-200617/foodiebot-ai-recommendation-system/internal/store"
)

func main() {
	// Optional .env for development; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	st, err := openStore(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to open product store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close store")
		}
	}()

	var analyzer *sentiment.Analyzer
	if cfg.Sentiment.AdvancedEnabled {
		analyzer = sentiment.NewAnalyzer(sentiment.NewVADERScorer(), logger)
	} else {
		analyzer = sentiment.NewAnalyzer(nil, logger)
	}

	scorer := scoring.NewEngine(analyzer, logger)

	recommender := recommend.NewEngine(st, recommend.ThresholdStrategy{
		Hot:     cfg.Recommend.HotThreshold,
		Warm:    cfg.Recommend.WarmThreshold,
		Curious: cfg.Recommend.CuriousThreshold,
	}, logger)
	recommender.RegisterGenerator(generators.NewPreferenceMatching(st))
	recommender.RegisterGenerator(generators.NewMoodBased(st))
	recommender.RegisterGenerator(generators.NewBudgetOptimization(st, cfg.Recommend.BudgetCeiling))
	recommender.RegisterGenerator(generators.NewDietaryIntelligence(st))
	recommender.RegisterGenerator(generators.NewCollaborative(st, recommender.Profiles()))

	handler := api.NewHandler(st, scorer, recommender, cfg.Recommend.DefaultLimit, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handler),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("driver", cfg.Database.Driver).
			Msg("foodiebot server listening")
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openStore builds the configured store backend, seeding the catalog
// when requested.
func openStore(cfg *config.Config) (store.ProductStore, error) {
	switch cfg.Database.Driver {
	case "memory":
		if cfg.Database.Seed {
			return store.NewMemory(store.SeedProducts()), nil
		}
		return store.NewMemory(nil), nil
	case "sqlite":
		st, err := store.NewSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		if cfg.Database.Seed {
			if err := store.SeedSQLite(context.Background(), st); err != nil {
				st.Close() //nolint:errcheck // seeding error takes precedence
				return nil, fmt.Errorf("seed catalog: %w", err)
			}
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}
