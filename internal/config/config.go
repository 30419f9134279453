package config

import (
	"fmt"
	"os"
	"strconv"

	"opportunity-recommender/internal/matching"
)

type Config struct {
	// Database
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Matching weights
	Weights matching.Weights

	// Maintenance
	SweepIntervalHours int

	// Logging
	LogLevel string
}

func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		Weights:            matching.DefaultWeights(),
		SweepIntervalHours: 1,
		LogLevel:           "info",
		RedisDB:            0,
	}

	cfg.PostgresDSN = os.Getenv("POSTGRES_DSN")
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	} else {
		cfg.RedisAddr = "localhost:6379"
	}

	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		db, err := strconv.Atoi(redisDB)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}

	if err := loadWeight(&cfg.Weights.Skills, "WEIGHT_SKILLS"); err != nil {
		return nil, err
	}
	if err := loadWeight(&cfg.Weights.Location, "WEIGHT_LOCATION"); err != nil {
		return nil, err
	}
	if err := loadWeight(&cfg.Weights.Education, "WEIGHT_EDUCATION"); err != nil {
		return nil, err
	}
	if err := loadWeight(&cfg.Weights.Preferences, "WEIGHT_PREFERENCES"); err != nil {
		return nil, err
	}

	if interval := os.Getenv("SWEEP_INTERVAL_HOURS"); interval != "" {
		n, err := strconv.Atoi(interval)
		if err != nil {
			return nil, fmt.Errorf("invalid SWEEP_INTERVAL_HOURS: %w", err)
		}
		cfg.SweepIntervalHours = n
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.PostgresDSN == "" {
		return fmt.Errorf("postgres DSN is empty")
	}

	if err := c.Weights.Validate(); err != nil {
		return err
	}

	if c.SweepIntervalHours < 1 {
		return fmt.Errorf("sweep interval must be at least 1 hour: %d", c.SweepIntervalHours)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

func loadWeight(dest *float64, envVar string) error {
	raw := os.Getenv(envVar)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", envVar, err)
	}
	*dest = v
	return nil
}
