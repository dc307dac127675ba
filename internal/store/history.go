package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoHistory is returned by Latest when nothing has been saved yet.
var ErrNoHistory = errors.New("no saved ranges")

// Range is one applied start/end selection.
type Range struct {
	ID      int64
	Start   time.Time
	End     time.Time
	UseAMPM bool
	SavedAt time.Time
}

// History keeps applied ranges in a local SQLite file.
type History struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the history database at path.
func Open(ctx context.Context, path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history pragma: %w", err)
		}
	}
	h := &History{db: db, now: time.Now}
	if err := h.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return h, nil
}

func (h *History) Close() error { return h.db.Close() }

func (h *History) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ranges (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_unixms INTEGER NOT NULL,
			end_unixms INTEGER NOT NULL,
			use_ampm INTEGER NOT NULL,
			saved_at_unixms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_ranges_saved ON ranges(saved_at_unixms);`,
	}
	for _, st := range stmts {
		if _, err := h.db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
	}
	return nil
}

// Save appends r and returns its id. SavedAt is filled in when zero.
func (h *History) Save(ctx context.Context, r Range) (int64, error) {
	if !r.Start.Before(r.End) {
		return 0, fmt.Errorf("save range: start %s is not before end %s", r.Start, r.End)
	}
	if r.SavedAt.IsZero() {
		r.SavedAt = h.now()
	}
	res, err := h.db.ExecContext(ctx,
		`INSERT INTO ranges(start_unixms, end_unixms, use_ampm, saved_at_unixms) VALUES(?, ?, ?, ?)`,
		r.Start.UnixMilli(), r.End.UnixMilli(), boolToInt(r.UseAMPM), r.SavedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("save range: %w", err)
	}
	return res.LastInsertId()
}

// Latest returns the most recently saved range, or ErrNoHistory.
func (h *History) Latest(ctx context.Context) (Range, error) {
	rs, err := h.List(ctx, 1)
	if err != nil {
		return Range{}, err
	}
	if len(rs) == 0 {
		return Range{}, ErrNoHistory
	}
	return rs[0], nil
}

// List returns up to limit ranges, newest first. A non-positive limit
// returns all of them.
func (h *History) List(ctx context.Context, limit int) ([]Range, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, start_unixms, end_unixms, use_ampm, saved_at_unixms
		FROM ranges ORDER BY saved_at_unixms DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list ranges: %w", err)
	}
	defer rows.Close()

	var out []Range
	for rows.Next() {
		var (
			r                       Range
			start, end, saved, ampm int64
		)
		if err := rows.Scan(&r.ID, &start, &end, &ampm, &saved); err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		r.Start = time.UnixMilli(start)
		r.End = time.UnixMilli(end)
		r.SavedAt = time.UnixMilli(saved)
		r.UseAMPM = ampm != 0
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ranges: %w", err)
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
