// Package index owns the persisted catalog of added problems. The whole
// index is loaded at construction and rewritten on every insertion; it
// assumes exclusive single-process access and does no locking.
package index

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"leettrack/internal/domain/model"
	"leettrack/internal/domain/ports"
)

const topTagLimit = 10

// Index maps problem ids to their records, with slug as alternate key.
type Index struct {
	path   string
	byID   map[int]model.Problem
	bySlug map[string]int
}

var _ ports.ProblemIndex = (*Index)(nil)

// Load reads the persisted index at path, or starts empty when no file
// exists. A file that cannot be parsed is fatal: the error wraps
// model.ErrCorruptIndex and the documented recovery is deleting the file.
func Load(path string) (*Index, error) {
	idx := &Index{
		path:   path,
		byID:   make(map[int]model.Problem),
		bySlug: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return idx, nil
		}
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	var problems []model.Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrCorruptIndex, path, err)
	}

	for _, p := range problems {
		if _, dup := idx.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate id %d", model.ErrCorruptIndex, path, p.ID)
		}
		if _, dup := idx.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate slug %q", model.ErrCorruptIndex, path, p.Slug)
		}
		idx.byID[p.ID] = p
		idx.bySlug[p.Slug] = p.ID
	}

	return idx, nil
}

// Contains reports whether a problem is indexed by numeric id or slug.
func (idx *Index) Contains(idOrSlug string) bool {
	if id, err := strconv.Atoi(idOrSlug); err == nil {
		_, ok := idx.byID[id]
		return ok
	}
	_, ok := idx.bySlug[idOrSlug]
	return ok
}

// Add inserts the problem unless its id or slug is already present, then
// persists the full index. Duplicates are skipped, never overwritten.
func (idx *Index) Add(problem model.Problem) (bool, error) {
	if _, ok := idx.byID[problem.ID]; ok {
		return false, nil
	}
	if _, ok := idx.bySlug[problem.Slug]; ok {
		return false, nil
	}

	idx.byID[problem.ID] = problem
	idx.bySlug[problem.Slug] = problem.ID

	if err := idx.persist(); err != nil {
		delete(idx.byID, problem.ID)
		delete(idx.bySlug, problem.Slug)
		return false, err
	}
	return true, nil
}

// Get looks up a problem by numeric id.
func (idx *Index) Get(id int) (model.Problem, bool) {
	p, ok := idx.byID[id]
	return p, ok
}

// GetBySlug looks up a problem by slug.
func (idx *Index) GetBySlug(slug string) (model.Problem, bool) {
	id, ok := idx.bySlug[slug]
	if !ok {
		return model.Problem{}, false
	}
	return idx.byID[id], true
}

// All returns every indexed problem in ascending id order.
func (idx *Index) All() []model.Problem {
	problems := make([]model.Problem, 0, len(idx.byID))
	for _, p := range idx.byID {
		problems = append(problems, p)
	}
	sort.Slice(problems, func(i, j int) bool { return problems[i].ID < problems[j].ID })
	return problems
}

// SearchTitle returns problems whose title or slug contains the keyword,
// case-insensitively, in ascending id order.
func (idx *Index) SearchTitle(keyword string) []model.Problem {
	keyword = strings.ToLower(keyword)
	var matches []model.Problem
	for _, p := range idx.All() {
		if strings.Contains(strings.ToLower(p.Title), keyword) ||
			strings.Contains(strings.ToLower(p.Slug), keyword) {
			matches = append(matches, p)
		}
	}
	return matches
}

// SearchTag returns problems carrying the tag. Matching is case-insensitive
// but exact: a keyword that is merely a substring of a tag does not match.
func (idx *Index) SearchTag(tag string) []model.Problem {
	tag = strings.ToLower(tag)
	var matches []model.Problem
	for _, p := range idx.All() {
		for _, t := range p.Tags {
			if strings.ToLower(t) == tag {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}

// Stats aggregates the indexed problems. Tag counts are sorted by descending
// count (ties by tag name) and capped to the top ten.
func (idx *Index) Stats() model.Stats {
	stats := model.Stats{
		Total:        len(idx.byID),
		ByDifficulty: make(map[model.Difficulty]int),
	}

	tagCounts := make(map[string]int)
	for _, p := range idx.byID {
		stats.ByDifficulty[p.Difficulty]++
		for _, t := range p.Tags {
			tagCounts[t]++
		}
	}

	for tag, count := range tagCounts {
		stats.TopTags = append(stats.TopTags, model.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(stats.TopTags, func(i, j int) bool {
		if stats.TopTags[i].Count != stats.TopTags[j].Count {
			return stats.TopTags[i].Count > stats.TopTags[j].Count
		}
		return stats.TopTags[i].Tag < stats.TopTags[j].Tag
	})
	if len(stats.TopTags) > topTagLimit {
		stats.TopTags = stats.TopTags[:topTagLimit]
	}

	return stats
}

// persist writes the full index atomically: marshal to a temp file in the
// same directory, then rename over the target.
func (idx *Index) persist() error {
	data, err := json.MarshalIndent(idx.All(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	dir := filepath.Dir(idx.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "index-*.json")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp index: %w", err)
	}
	if err := os.Rename(tmpName, idx.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace index: %w", err)
	}
	return nil
}
