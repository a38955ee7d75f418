//go:build wireinject

package di

import (
	"github.com/google/wire"

	"leettrack/internal/adapter/logging"
	"leettrack/internal/config"
	"leettrack/internal/domain/ports"
	"leettrack/internal/usecase"
)

// InitializeTracker wires the application components together. The returned
// cleanup closes the catalog database.
func InitializeTracker() (*usecase.Tracker, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideProblemProvider,
		provideProblemIndex,
		provideCatalog,
		provideSolutionWriter,
		provideOut,
		usecase.New,
	)
	return nil, nil, nil
}
