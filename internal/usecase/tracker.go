package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gosimple/slug"

	"leettrack/internal/domain/model"
	"leettrack/internal/domain/ports"
)

// Tracker orchestrates fetching problems, indexing them and generating
// solution stubs. It is constructed per invocation and threaded through the
// command handlers explicitly.
type Tracker struct {
	provider ports.ProblemProvider
	index    ports.ProblemIndex
	catalog  ports.Catalog
	writer   ports.SolutionWriter
	logger   ports.Logger
	out      io.Writer
}

// New constructs a Tracker use case.
func New(
	provider ports.ProblemProvider,
	index ports.ProblemIndex,
	catalog ports.Catalog,
	writer ports.SolutionWriter,
	logger ports.Logger,
	out io.Writer,
) *Tracker {
	return &Tracker{
		provider: provider,
		index:    index,
		catalog:  catalog,
		writer:   writer,
		logger:   logger,
		out:      out,
	}
}

// AddProblems resolves, fetches and indexes each identifier in turn. A
// failure on one identifier is reported and the batch continues; the
// returned error is non-nil when any identifier failed.
func (t *Tracker) AddProblems(ctx context.Context, idsOrSlugs []string) error {
	failed := 0
	for _, raw := range idsOrSlugs {
		if err := t.addOne(ctx, raw); err != nil {
			if errors.Is(err, model.ErrExists) {
				fmt.Fprintf(t.out, "[!] %v\n", err)
				continue
			}
			failed++
			fmt.Fprintf(t.out, "[x] %q: %v\n", raw, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d problems failed", failed, len(idsOrSlugs))
	}
	return nil
}

func (t *Tracker) addOne(ctx context.Context, raw string) error {
	identifier := strings.TrimSpace(raw)
	if identifier == "" {
		return fmt.Errorf("empty identifier")
	}

	if t.index.Contains(identifier) {
		return fmt.Errorf("%w: %s", model.ErrExists, identifier)
	}

	titleSlug, err := t.resolveSlug(ctx, identifier)
	if err != nil {
		return err
	}
	if t.index.Contains(titleSlug) {
		return fmt.Errorf("%w: %s", model.ErrExists, titleSlug)
	}

	t.logger.Info(ctx, "fetching problem", "slug", titleSlug)
	problem, err := t.provider.FetchBySlug(ctx, titleSlug)
	if err != nil {
		return err
	}
	if t.index.Contains(strconv.Itoa(problem.ID)) {
		return fmt.Errorf("%w: %d (%s)", model.ErrExists, problem.ID, problem.Title)
	}

	filename, created, err := t.writer.Generate(problem)
	if err != nil {
		return fmt.Errorf("generate solution file: %w", err)
	}
	if !created {
		fmt.Fprintf(t.out, "[!] file %s already exists, keeping it\n", filename)
	}

	problem.Filename = filename
	problem.AddedAt = time.Now().UTC()

	inserted, err := t.index.Add(*problem)
	if err != nil {
		return fmt.Errorf("index problem %d: %w", problem.ID, err)
	}
	if !inserted {
		return fmt.Errorf("%w: %d (%s)", model.ErrExists, problem.ID, problem.Title)
	}

	fmt.Fprintf(t.out, "[ok] added %d. %s (%s) -> %s\n", problem.ID, problem.Title, problem.Difficulty, filename)
	return nil
}

// resolveSlug turns a raw identifier into a problem slug. Numeric ids go
// through the catalog, falling back to the remote problemset listing; free
// form text is slug-normalized ("Two Sum" -> "two-sum").
func (t *Tracker) resolveSlug(ctx context.Context, identifier string) (string, error) {
	id, err := strconv.Atoi(identifier)
	if err != nil {
		return slug.Make(identifier), nil
	}
	if id <= 0 {
		return "", fmt.Errorf("%w: invalid problem id %d", model.ErrNotFound, id)
	}

	titleSlug, err := t.catalog.SlugForID(ctx, id)
	if err == nil {
		return titleSlug, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", err
	}

	t.logger.Info(ctx, "id not in catalog, fetching problemset", "id", id)
	entries, err := t.provider.Problemset(ctx)
	if err != nil {
		return "", err
	}
	if _, _, err := t.catalog.Store(ctx, entries, false); err != nil {
		t.logger.Error(ctx, "failed to cache problemset", "error", err)
	}

	for _, entry := range entries {
		if entry.ID == id {
			return entry.Slug, nil
		}
	}
	return "", fmt.Errorf("%w: id %d", model.ErrNotFound, id)
}

// List prints every indexed problem as an aligned table.
func (t *Tracker) List() error {
	problems := t.index.All()
	if len(problems) == 0 {
		fmt.Fprintln(t.out, "No problems added yet. Use 'add' to get started.")
		return nil
	}

	t.printTable(problems, true)
	fmt.Fprintf(t.out, "\nTotal: %d problem(s)\n", len(problems))
	return nil
}

// Search prints problems matching the keyword, by tag when byTag is set.
func (t *Tracker) Search(keyword string, byTag bool) error {
	var (
		matches []model.Problem
		kind    string
	)
	if byTag {
		matches = t.index.SearchTag(keyword)
		kind = "tag"
	} else {
		matches = t.index.SearchTitle(keyword)
		kind = "title"
	}

	if len(matches) == 0 {
		fmt.Fprintf(t.out, "No problems found with %s %q\n", kind, keyword)
		return nil
	}

	t.printTable(matches, false)
	fmt.Fprintf(t.out, "\nFound %d problem(s)\n", len(matches))
	return nil
}

// Stats prints aggregate counts over the index.
func (t *Tracker) Stats() error {
	stats := t.index.Stats()
	if stats.Total == 0 {
		fmt.Fprintln(t.out, "No problems added yet.")
		return nil
	}

	fmt.Fprintf(t.out, "Total problems: %d\n", stats.Total)

	fmt.Fprintln(t.out, "\nBy difficulty:")
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if count := stats.ByDifficulty[d]; count > 0 {
			fmt.Fprintf(w, "  %s\t%d\n", d, count)
		}
	}
	w.Flush()

	if len(stats.TopTags) > 0 {
		fmt.Fprintln(t.out, "\nTop tags:")
		w = tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
		for _, tc := range stats.TopTags {
			fmt.Fprintf(w, "  %s\t%d\n", tc.Tag, tc.Count)
		}
		w.Flush()
	}
	return nil
}

// Sync downloads the problemset listing into the local catalog. Without
// force it is a no-op when the catalog is already populated.
func (t *Tracker) Sync(ctx context.Context, force bool) error {
	status, err := t.catalog.Status(ctx)
	if err != nil {
		return err
	}

	if status.Total > 0 && !force {
		fmt.Fprintf(t.out, "Catalog already contains %d problems (last synced %s).\n",
			status.Total, status.LastSync.Format(time.RFC3339))
		fmt.Fprintln(t.out, "Use --force to re-sync.")
		return nil
	}

	t.logger.Info(ctx, "syncing problemset listing")
	entries, err := t.provider.Problemset(ctx)
	if err != nil {
		return err
	}

	stored, skipped, err := t.catalog.Store(ctx, entries, force)
	if err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Sync complete: %d stored, %d skipped.\n", stored, skipped)

	status, err = t.catalog.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(t.out, "Catalog now contains %d problems.\n", status.Total)
	return nil
}

func (t *Tracker) printTable(problems []model.Problem, withFile bool) {
	w := tabwriter.NewWriter(t.out, 0, 4, 2, ' ', 0)
	if withFile {
		fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tTAGS\tFILE")
	} else {
		fmt.Fprintln(w, "ID\tTITLE\tDIFFICULTY\tTAGS")
	}
	for _, p := range problems {
		if withFile {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Difficulty, tagSummary(p.Tags), p.Filename)
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Title, p.Difficulty, tagSummary(p.Tags))
		}
	}
	w.Flush()
}

// tagSummary shows at most three tags in display order.
func tagSummary(tags []string) string {
	if len(tags) <= 3 {
		return strings.Join(tags, ", ")
	}
	return strings.Join(tags[:3], ", ") + "..."
}
