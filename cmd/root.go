package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"opportunity-recommender/internal/config"
	"opportunity-recommender/internal/logger"
	"opportunity-recommender/internal/matching"
	"opportunity-recommender/internal/service"
	"opportunity-recommender/internal/storage/postgres"
	"opportunity-recommender/internal/storage/redis"
)

var rootCmd = &cobra.Command{
	Use:   "opportunity-recommender",
	Short: "Personalized ranking of jobs, scholarships, grants and fellowships",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles everything a subcommand needs after bootstrap.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	store   *postgres.Store
	cache   *redis.Cache
	engine  *matching.Engine
	service *service.Service
}

// setup wires config, logger, storage and the matching engine. The returned
// cleanup closes connections and must be deferred by the caller.
func setup() (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := postgres.New(cfg.PostgresDSN, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to PostgreSQL: %w", err)
	}

	cache, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, log)
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("connect to Redis: %w", err)
	}

	scorer, err := matching.NewScorer(cfg.Weights)
	if err != nil {
		store.Close()
		cache.Close()
		return nil, nil, err
	}

	engine := matching.NewEngine(store, cache, scorer, log)

	a := &app{
		cfg:     cfg,
		log:     log,
		store:   store,
		cache:   cache,
		engine:  engine,
		service: service.New(store, cache, engine, log),
	}

	cleanup := func() {
		cache.Close()
		store.Close()
		log.Sync()
	}

	return a, cleanup, nil
}
