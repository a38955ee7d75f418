package di

import (
	"io"
	"log/slog"
	"os"

	"leettrack/internal/adapter/leetcode"
	"leettrack/internal/catalog"
	"leettrack/internal/config"
	"leettrack/internal/domain/ports"
	"leettrack/internal/generate"
	"leettrack/internal/index"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})
	return slog.New(handler)
}

func provideProblemProvider(cfg *config.Config, logger ports.Logger) ports.ProblemProvider {
	return leetcode.New(cfg.GraphQLURL, cfg.ProblemsetURL, cfg.RequestTimeout, logger)
}

func provideProblemIndex(cfg *config.Config) (ports.ProblemIndex, error) {
	return index.Load(cfg.IndexPath())
}

func provideCatalog(cfg *config.Config) (ports.Catalog, func(), error) {
	db, err := catalog.Open(cfg.CatalogPath())
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}

func provideSolutionWriter(cfg *config.Config) ports.SolutionWriter {
	return generate.New(cfg.SolutionsDir)
}

func provideOut() io.Writer {
	return os.Stdout
}
