package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"irweave/internal/config"
)

// Store manages queue persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the queue database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.QueueDBPath())
}

// OpenPath connects to the queue database at an explicit location.
func OpenPath(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add enqueues a capture file for conversion. Enqueuing the same source
// path twice is rejected so inbox rescans stay idempotent.
func (s *Store) Add(ctx context.Context, sourcePath string) (*Item, error) {
	now := timestamp()

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO queue_items (source_path, status, created_at, updated_at)
         VALUES (?, ?, ?, ?)`,
		sourcePath,
		StatusPending,
		now,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("capture %s is already queued", sourcePath)
		}
		return nil, fmt.Errorf("insert queue item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Known reports whether a source path has ever been enqueued.
func (s *Store) Known(ctx context.Context, sourcePath string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM queue_items WHERE source_path = ?", sourcePath,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check source path: %w", err)
	}
	return count > 0, nil
}

// GetByID fetches a single item.
func (s *Store) GetByID(ctx context.Context, id int64) (*Item, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM queue_items WHERE id = ?", id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

// List returns items ordered by creation, optionally filtered by status.
func (s *Store) List(ctx context.Context, statuses ...Status) ([]*Item, error) {
	query := "SELECT " + itemColumns + " FROM queue_items"
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ",") + ")"
	}
	query += " ORDER BY id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// NextPending claims the oldest pending item and moves it to converting.
// Returns nil when the queue has no pending work.
func (s *Store) NextPending(ctx context.Context) (*Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin claim tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM queue_items WHERE status = ? ORDER BY id LIMIT 1",
		StatusPending)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan pending item: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE queue_items SET status = ?, attempts = attempts + 1, updated_at = ? WHERE id = ?",
		StatusConverting, timestamp(), item.ID); err != nil {
		return nil, fmt.Errorf("claim item %d: %w", item.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim: %w", err)
	}

	item.Status = StatusConverting
	item.Attempts++
	return item, nil
}

// MarkConverted records a successful conversion.
func (s *Store) MarkConverted(ctx context.Context, id int64, brand, model, outputPath string, buttonCount int) error {
	return s.update(ctx, id,
		"UPDATE queue_items SET status = ?, brand = ?, model = ?, output_path = ?, button_count = ?, error_message = NULL, updated_at = ? WHERE id = ?",
		StatusConverted, brand, model, outputPath, buttonCount, timestamp(), id)
}

// MarkFailed records a failure. When the item still has attempts left it
// returns to pending for a later retry.
func (s *Store) MarkFailed(ctx context.Context, id int64, maxAttempts int, cause string) error {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	status := StatusPending
	if item.Attempts >= maxAttempts {
		status = StatusFailed
	}
	return s.update(ctx, id,
		"UPDATE queue_items SET status = ?, error_message = ?, updated_at = ? WHERE id = ?",
		status, cause, timestamp(), id)
}

// Retry returns failed items to pending with a fresh attempt budget.
func (s *Store) Retry(ctx context.Context, ids ...int64) (int64, error) {
	query := "UPDATE queue_items SET status = ?, attempts = 0, error_message = NULL, updated_at = ? WHERE status = ?"
	args := []any{StatusPending, timestamp(), StatusFailed}
	if len(ids) > 0 {
		placeholders := make([]string, len(ids))
		for i, id := range ids {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += " AND id IN (" + strings.Join(placeholders, ",") + ")"
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("retry items: %w", err)
	}
	return res.RowsAffected()
}

// Clear removes items, optionally restricted to the given statuses.
func (s *Store) Clear(ctx context.Context, statuses ...Status) (int64, error) {
	query := "DELETE FROM queue_items"
	args := make([]any, 0, len(statuses))
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, status)
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ",") + ")"
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}
	return res.RowsAffected()
}

// ResetStale returns converting items to pending. The daemon calls this on
// startup to recover work orphaned by a crash.
func (s *Store) ResetStale(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE queue_items SET status = ?, updated_at = ? WHERE status = ?",
		StatusPending, timestamp(), StatusConverting)
	if err != nil {
		return 0, fmt.Errorf("reset stale items: %w", err)
	}
	return res.RowsAffected()
}

// Health aggregates queue counts per lifecycle state.
func (s *Store) Health(ctx context.Context) (HealthSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT status, COUNT(1) FROM queue_items GROUP BY status")
	if err != nil {
		return HealthSummary{}, fmt.Errorf("queue health: %w", err)
	}
	defer rows.Close()

	var summary HealthSummary
	for rows.Next() {
		var status Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return HealthSummary{}, fmt.Errorf("scan health row: %w", err)
		}
		summary.Total += count
		switch status {
		case StatusPending:
			summary.Pending = count
		case StatusConverting:
			summary.Converting = count
		case StatusConverted:
			summary.Converted = count
		case StatusFailed:
			summary.Failed = count
		}
	}
	return summary, rows.Err()
}

func (s *Store) update(ctx context.Context, id int64, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for item %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
