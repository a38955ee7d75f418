// Package catalog keeps a local SQLite copy of the remote problemset
// listing so numeric ids resolve to slugs without a network round trip.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"leettrack/internal/domain/model"
	"leettrack/internal/domain/ports"
)

// DB handles all catalog database operations.
type DB struct {
	conn *sql.DB
}

var _ ports.Catalog = (*DB)(nil)

// Open creates a catalog database connection and initializes the schema.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping catalog: %w", err)
	}

	if err := createTables(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func createTables(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS problems (
			id INTEGER PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			paid_only BOOLEAN NOT NULL,
			synced_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = conn.Exec("CREATE INDEX IF NOT EXISTS idx_problems_slug ON problems(slug)")
	return err
}

// SlugForID resolves a numeric problem id to its slug.
func (db *DB) SlugForID(ctx context.Context, id int) (string, error) {
	var slug string
	err := db.conn.QueryRowContext(ctx, "SELECT slug FROM problems WHERE id = ?", id).Scan(&slug)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("%w: id %d not in catalog", model.ErrNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("query slug for id %d: %w", id, err)
	}
	return slug, nil
}

// Entry returns the catalogued listing row for a slug.
func (db *DB) Entry(ctx context.Context, slug string) (model.CatalogEntry, error) {
	var entry model.CatalogEntry
	err := db.conn.QueryRowContext(ctx,
		"SELECT id, slug, title, difficulty, paid_only FROM problems WHERE slug = ?", slug,
	).Scan(&entry.ID, &entry.Slug, &entry.Title, &entry.Difficulty, &entry.PaidOnly)
	if err == sql.ErrNoRows {
		return model.CatalogEntry{}, fmt.Errorf("%w: slug %q not in catalog", model.ErrNotFound, slug)
	}
	if err != nil {
		return model.CatalogEntry{}, fmt.Errorf("query entry for slug %q: %w", slug, err)
	}
	return entry, nil
}

// Store writes listing entries in a single transaction. When replace is
// false, rows already present are left untouched and counted as skipped.
func (db *DB) Store(ctx context.Context, entries []model.CatalogEntry, replace bool) (stored, skipped int, err error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin catalog tx: %w", err)
	}
	defer tx.Rollback()

	verb := "INSERT OR IGNORE"
	if replace {
		verb = "INSERT OR REPLACE"
	}
	stmt, err := tx.PrepareContext(ctx,
		verb+" INTO problems (id, slug, title, difficulty, paid_only, synced_at) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return 0, 0, fmt.Errorf("prepare catalog insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, entry := range entries {
		res, err := stmt.ExecContext(ctx, entry.ID, entry.Slug, entry.Title, string(entry.Difficulty), entry.PaidOnly, now)
		if err != nil {
			return 0, 0, fmt.Errorf("insert catalog entry %d: %w", entry.ID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, fmt.Errorf("insert catalog entry %d: %w", entry.ID, err)
		}
		if n == 0 {
			skipped++
		} else {
			stored++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit catalog tx: %w", err)
	}
	return stored, skipped, nil
}

// Status reports row count and last sync time.
func (db *DB) Status(ctx context.Context) (model.SyncStatus, error) {
	var status model.SyncStatus
	err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM problems").Scan(&status.Total)
	if err != nil {
		return model.SyncStatus{}, fmt.Errorf("count catalog: %w", err)
	}

	var last sql.NullInt64
	err = db.conn.QueryRowContext(ctx, "SELECT MAX(synced_at) FROM problems").Scan(&last)
	if err != nil {
		return model.SyncStatus{}, fmt.Errorf("query last sync: %w", err)
	}
	if last.Valid {
		status.LastSync = time.Unix(last.Int64, 0)
	}
	return status, nil
}
