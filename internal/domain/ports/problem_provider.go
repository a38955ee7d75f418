package ports

import (
	"context"

	"leettrack/internal/domain/model"
)

// ProblemProvider defines access to the remote problem service.
type ProblemProvider interface {
	// FetchBySlug retrieves the full problem payload for a slug.
	FetchBySlug(ctx context.Context, slug string) (*model.Problem, error)

	// Problemset retrieves the global problem listing, used to map numeric
	// ids to slugs and to populate the local catalog.
	Problemset(ctx context.Context) ([]model.CatalogEntry, error)
}
