package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	DataDir        string
	SolutionsDir   string
	GraphQLURL     string
	ProblemsetURL  string
	RequestTimeout time.Duration
	LogLevel       slog.Level
}

const (
	defaultDataDir       = "data"
	defaultSolutionsDir  = "solutions"
	defaultGraphQLURL    = "https://leetcode.com/graphql"
	defaultProblemsetURL = "https://leetcode.com/api/problems/all/"
	defaultTimeout       = 30 * time.Second
)

// Load builds a Config from environment variables with sane defaults. A .env
// file in the working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:        getenvDefault("LEETTRACK_DATA_DIR", defaultDataDir),
		SolutionsDir:   getenvDefault("LEETTRACK_SOLUTIONS_DIR", defaultSolutionsDir),
		GraphQLURL:     getenvDefault("LEETTRACK_API_URL", defaultGraphQLURL),
		ProblemsetURL:  getenvDefault("LEETTRACK_PROBLEMSET_URL", defaultProblemsetURL),
		RequestTimeout: parseDurationDefault("LEETTRACK_REQUEST_TIMEOUT", defaultTimeout),
		LogLevel:       parseLevelDefault("LEETTRACK_LOG_LEVEL", slog.LevelWarn),
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	return cfg, nil
}

// IndexPath is the location of the persisted problem index.
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "index.json")
}

// CatalogPath is the location of the synced problemset catalog.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, "catalog.db")
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func parseLevelDefault(key string, fallback slog.Level) slog.Level {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(val)); err != nil {
		return fallback
	}
	return level
}
