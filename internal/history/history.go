// Package history persists per-run pass/fail summaries in a local
// SQLite file so pass-rate trends survive across invocations. The
// external dashboard consumes the same numbers; this store is the
// repo-local record.
package history

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Run is one recorded TCK execution.
type Run struct {
	ID         int64
	Label      string
	RecordedAt time.Time
	Passed     int
	Failed     int
	Skipped    int
	Total      int
}

// FromSummary builds a Run from a scenario summary.
func FromSummary(label string, at time.Time, s domain.Summary) Run {
	return Run{
		Label:      label,
		RecordedAt: at,
		Passed:     s.Passed,
		Failed:     s.Failed,
		Skipped:    s.Skipped,
		Total:      s.Total,
	}
}

// Store wraps the SQLite database holding run history.
type Store struct {
	conn *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, domain.NewError("history", path, "failed to create database directory", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.NewError("history", path, "failed to open database", err)
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, domain.NewError("history", path, "failed to set journal mode", err)
	}

	s := &Store{conn: conn}
	if err := s.init(); err != nil {
		_ = conn.Close()
		return nil, domain.NewError("history", path, "failed to initialize schema", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  label TEXT NOT NULL,
  recordedAt TEXT NOT NULL,
  passed INTEGER NOT NULL,
  failed INTEGER NOT NULL,
  skipped INTEGER NOT NULL,
  total INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_recordedAt ON runs(recordedAt);
`
	_, err := s.conn.Exec(schema)
	return err
}

// Record inserts a run and returns its id.
func (s *Store) Record(run Run) (int64, error) {
	res, err := s.conn.Exec(
		`INSERT INTO runs (label, recordedAt, passed, failed, skipped, total) VALUES (?, ?, ?, ?, ?, ?)`,
		run.Label,
		run.RecordedAt.UTC().Format(time.RFC3339),
		run.Passed,
		run.Failed,
		run.Skipped,
		run.Total,
	)
	if err != nil {
		return 0, domain.NewError("history", "", "failed to record run", err)
	}
	return res.LastInsertId()
}

// Trend returns the most recent limit runs, oldest first so deltas
// read forward in time. limit <= 0 returns everything.
func (s *Store) Trend(limit int) ([]Run, error) {
	query := `SELECT id, label, recordedAt, passed, failed, skipped, total FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, domain.NewError("history", "", "failed to query runs", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var recordedAt string
		if err := rows.Scan(&r.ID, &r.Label, &recordedAt, &r.Passed, &r.Failed, &r.Skipped, &r.Total); err != nil {
			return nil, domain.NewError("history", "", "failed to scan run", err)
		}
		r.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewError("history", "", "failed to iterate runs", err)
	}

	// Reverse into chronological order.
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	return runs, nil
}

// RenderTrend writes runs as a table with pass deltas between
// consecutive runs.
func RenderTrend(w io.Writer, runs []Run) {
	fmt.Fprintf(w, "%-20s %-24s %7s %7s %8s %7s %7s\n",
		"label", "recorded", "passed", "failed", "skipped", "total", "delta")
	prev := -1
	for _, r := range runs {
		delta := ""
		if prev >= 0 {
			delta = fmt.Sprintf("%+d", r.Passed-prev)
		}
		fmt.Fprintf(w, "%-20s %-24s %7d %7d %8d %7d %7s\n",
			r.Label, r.RecordedAt.Format(time.RFC3339), r.Passed, r.Failed, r.Skipped, r.Total, delta)
		prev = r.Passed
	}
}
