package model

import "time"

// Difficulty is the LeetCode difficulty rating of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Problem is a single catalogued coding problem. Records are immutable once
// fetched; the index never rewrites an existing entry.
type Problem struct {
	ID          int        `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	Examples    string     `json:"examples,omitempty"`
	Constraints string     `json:"constraints,omitempty"`
	Link        string     `json:"link"`
	CodeSnippet string     `json:"code_snippet,omitempty"`
	Filename    string     `json:"filename,omitempty"`
	AddedAt     time.Time  `json:"added_at,omitzero"`
}

// CatalogEntry is one row of the synced problemset listing. It carries just
// enough to resolve numeric ids to slugs without a network round trip.
type CatalogEntry struct {
	ID         int
	Slug       string
	Title      string
	Difficulty Difficulty
	PaidOnly   bool
}

// SyncStatus describes the state of the local catalog.
type SyncStatus struct {
	Total    int
	LastSync time.Time
}

// TagCount pairs a tag with the number of indexed problems carrying it.
type TagCount struct {
	Tag   string
	Count int
}

// Stats aggregates the indexed problems.
type Stats struct {
	Total        int
	ByDifficulty map[Difficulty]int
	TopTags      []TagCount
}
