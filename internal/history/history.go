// Package history persists a log of schedule runs in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/Haston00/DABO/internal/cpm"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id           TEXT PRIMARY KEY,
    project      TEXT NOT NULL,
    scope        TEXT NOT NULL DEFAULT '',
    activities   INTEGER NOT NULL,
    critical     INTEGER NOT NULL,
    milestones   INTEGER NOT NULL,
    project_days INTEGER NOT NULL,
    created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Run is one recorded scheduling run.
type Run struct {
	ID          string
	Project     string
	Scope       string
	Activities  int
	Critical    int
	Milestones  int
	ProjectDays int
	CreatedAt   time.Time
}

// NewRun builds a Run from a computed schedule summary.
func NewRun(project, scope string, s cpm.Summary) Run {
	return Run{
		Project:     project,
		Scope:       scope,
		Activities:  s.Activities,
		Critical:    s.Critical,
		Milestones:  s.Milestones,
		ProjectDays: s.ProjectDays,
	}
}

// Log stores runs in a local SQLite database in WAL mode.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the run log at dbPath, enables WAL mode and busy
// timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("history: open database: %w", err)
	}

	// SQLite only supports a single writer; one connection avoids
	// SQLITE_BUSY contention between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create schema: %w", err)
	}

	return &Log{db: db}, nil
}

// Record inserts a run, assigning an id when empty, and returns the id.
func (l *Log) Record(ctx context.Context, r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	const q = `
		INSERT INTO runs (id, project, scope, activities, critical, milestones, project_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	if _, err := l.db.ExecContext(ctx, q,
		r.ID, r.Project, r.Scope, r.Activities, r.Critical, r.Milestones, r.ProjectDays,
	); err != nil {
		return "", fmt.Errorf("history: record run %q: %w", r.Project, err)
	}
	return r.ID, nil
}

// Recent returns the most recent n runs, newest first. n <= 0 returns all.
func (l *Log) Recent(ctx context.Context, n int) ([]Run, error) {
	q := `SELECT id, project, scope, activities, critical, milestones, project_days, created_at
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if n > 0 {
		q += " LIMIT ?"
		args = append(args, n)
	}

	rows, err := l.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		var r Run
		var ts string
		if err := rows.Scan(&r.ID, &r.Project, &r.Scope, &r.Activities, &r.Critical, &r.Milestones, &r.ProjectDays, &ts); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		createdAt, parseErr := parseTimestamp(ts)
		if parseErr != nil {
			return nil, fmt.Errorf("history: parse run timestamp: %w", parseErr)
		}
		r.CreatedAt = createdAt
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return result, nil
}

// Close releases the database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// timestampFormats lists the formats SQLite drivers may produce for
// CURRENT_TIMESTAMP. modernc.org/sqlite typically returns RFC 3339,
// while canonical SQLite returns the space-separated DateTime format.
var timestampFormats = []string{
	time.RFC3339,
	time.DateTime,
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", s)
}
