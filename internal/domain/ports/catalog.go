package ports

import (
	"context"

	"leettrack/internal/domain/model"
)

// Catalog is the synced local copy of the remote problemset listing.
type Catalog interface {
	// SlugForID resolves a numeric problem id to its slug. Returns
	// model.ErrNotFound when the id is not catalogued.
	SlugForID(ctx context.Context, id int) (string, error)

	// Entry returns the catalogued listing row for a slug.
	Entry(ctx context.Context, slug string) (model.CatalogEntry, error)

	// Store writes listing entries. When replace is false, entries already
	// present are skipped. Returns how many were stored and skipped.
	Store(ctx context.Context, entries []model.CatalogEntry, replace bool) (stored, skipped int, err error)

	// Status reports row count and last sync time.
	Status(ctx context.Context) (model.SyncStatus, error)

	Close() error
}
