package ports

import "leettrack/internal/domain/model"

// ProblemIndex is the local catalog of already-added problems. It assumes
// exclusive single-process access; mutations persist synchronously.
type ProblemIndex interface {
	// Contains reports whether a problem is indexed by numeric id or slug.
	Contains(idOrSlug string) bool

	// Add inserts the problem unless its id or slug is already present.
	// It returns whether an insertion occurred.
	Add(problem model.Problem) (bool, error)

	// Get looks up a problem by numeric id.
	Get(id int) (model.Problem, bool)

	// GetBySlug looks up a problem by slug.
	GetBySlug(slug string) (model.Problem, bool)

	// All returns every indexed problem in ascending id order.
	All() []model.Problem

	// SearchTitle returns problems whose title or slug contains the
	// keyword, case-insensitively.
	SearchTitle(keyword string) []model.Problem

	// SearchTag returns problems carrying the tag (exact match,
	// case-insensitive).
	SearchTag(tag string) []model.Problem

	// Stats aggregates the indexed problems.
	Stats() model.Stats
}
