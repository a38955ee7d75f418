package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"leettrack/internal/domain/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleEntries() []model.CatalogEntry {
	return []model.CatalogEntry{
		{ID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: model.DifficultyEasy},
		{ID: 4, Slug: "median-of-two-sorted-arrays", Title: "Median of Two Sorted Arrays", Difficulty: model.DifficultyHard},
		{ID: 15, Slug: "3sum", Title: "3Sum", Difficulty: model.DifficultyMedium, PaidOnly: false},
	}
}

func TestStoreAndResolve(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	stored, skipped, err := db.Store(ctx, sampleEntries(), false)
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if stored != 3 || skipped != 0 {
		t.Errorf("stored/skipped = %d/%d, want 3/0", stored, skipped)
	}

	slug, err := db.SlugForID(ctx, 4)
	if err != nil {
		t.Fatalf("SlugForID: %v", err)
	}
	if slug != "median-of-two-sorted-arrays" {
		t.Errorf("slug = %q", slug)
	}

	entry, err := db.Entry(ctx, "3sum")
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if entry.ID != 15 || entry.Difficulty != model.DifficultyMedium {
		t.Errorf("entry = %+v", entry)
	}
}

func TestStoreSkipsExisting(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, _, err := db.Store(ctx, sampleEntries(), false); err != nil {
		t.Fatalf("first Store: %v", err)
	}

	// Same ids again with a changed title; without replace, rows stay put.
	changed := sampleEntries()
	changed[0].Title = "Renamed"
	stored, skipped, err := db.Store(ctx, changed, false)
	if err != nil {
		t.Fatalf("second Store: %v", err)
	}
	if stored != 0 || skipped != 3 {
		t.Errorf("stored/skipped = %d/%d, want 0/3", stored, skipped)
	}

	entry, err := db.Entry(ctx, "two-sum")
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if entry.Title != "Two Sum" {
		t.Errorf("Title = %q, want original kept", entry.Title)
	}
}

func TestStoreReplace(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, _, err := db.Store(ctx, sampleEntries(), false); err != nil {
		t.Fatalf("first Store: %v", err)
	}

	changed := sampleEntries()
	changed[0].Title = "Renamed"
	stored, _, err := db.Store(ctx, changed, true)
	if err != nil {
		t.Fatalf("replace Store: %v", err)
	}
	if stored != 3 {
		t.Errorf("stored = %d, want 3", stored)
	}

	entry, err := db.Entry(ctx, "two-sum")
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if entry.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", entry.Title)
	}
}

func TestNotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.SlugForID(ctx, 9999); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("SlugForID err = %v, want ErrNotFound", err)
	}
	if _, err := db.Entry(ctx, "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Entry err = %v, want ErrNotFound", err)
	}
}

func TestStatus(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	status, err := db.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Total != 0 || !status.LastSync.IsZero() {
		t.Errorf("empty status = %+v", status)
	}

	if _, _, err := db.Store(ctx, sampleEntries(), false); err != nil {
		t.Fatalf("Store: %v", err)
	}

	status, err = db.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Total != 3 {
		t.Errorf("Total = %d, want 3", status.Total)
	}
	if status.LastSync.IsZero() {
		t.Error("LastSync is zero after sync")
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx := context.Background()
	if _, _, err := db.Store(ctx, sampleEntries(), false); err != nil {
		t.Fatalf("Store: %v", err)
	}
	db.Close()

	// Reopening must keep rows and not recreate the schema destructively.
	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()

	status, err := db.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Total != 3 {
		t.Errorf("Total after reopen = %d, want 3", status.Total)
	}
}
