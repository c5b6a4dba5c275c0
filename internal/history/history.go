package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/onekp-tools/onekp/internal/model"
)

// dbFileName is the SQLite database file inside the history directory.
const dbFileName = "onekp.db"

// DB provides SQLite-based storage for fetch-run history.
//
// Design decision: We use one database file for all runs rather than one per
// run. Runs are small (one row plus a handful of outcome rows) and a single
// file keeps the history subcommand a plain query.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Run is one persisted fetch run.
type Run struct {
	// ID is the run's database identifier.
	ID int64

	// SequenceType is the selection the run was started with.
	SequenceType string

	// TargetDir is the directory files were written to.
	TargetDir string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time

	// Succeeded and Failed are the record counts per terminal state.
	Succeeded int
	Failed    int
}

// Outcome is one persisted per-record outcome.
type Outcome struct {
	// RunID references the owning run.
	RunID int64

	// SampleID is the record's sample identifier.
	SampleID string

	// Species is carried for readable listings.
	Species string

	// Status is the terminal state name ("succeeded" or "failed").
	Status string

	// Cause is the failure cause, empty on success.
	Cause string
}

// Open opens or creates the history database under dir.
// The directory and schema are created if missing.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFileName)
	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// SQLite only supports one writer; the CLI is single-threaded anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	h := &DB{db: db, dbPath: dbPath}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := h.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return h, nil
}

// Close closes the database connection.
func (h *DB) Close() error {
	return h.db.Close()
}

// Path returns the database file path.
func (h *DB) Path() string {
	return h.dbPath
}

// createTables creates the schema if it doesn't exist.
func (h *DB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence_type TEXT NOT NULL,
		target_dir TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS outcomes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		sample_id TEXT NOT NULL,
		species TEXT NOT NULL,
		status TEXT NOT NULL,
		cause TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_outcomes_run ON outcomes(run_id);
	CREATE INDEX IF NOT EXISTS idx_outcomes_sample ON outcomes(sample_id);
	`

	_, err := h.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun persists one run summary and all its outcomes in a transaction.
// It returns the new run's database ID.
func (h *DB) SaveRun(ctx context.Context, summary *model.RunSummary) (int64, error) {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after commit

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (sequence_type, target_dir, started_at, finished_at) VALUES (?, ?, ?, ?)`,
		summary.SequenceType.String(),
		summary.TargetDir,
		summary.StartedAt,
		summary.FinishedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, o := range summary.Outcomes {
		cause := ""
		if o.Err != nil {
			cause = o.Err.Error()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO outcomes (run_id, sample_id, species, status, cause) VALUES (?, ?, ?, ?, ?)`,
			runID, o.ID, o.Species, o.Status.String(), cause,
		); err != nil {
			return 0, fmt.Errorf("insert outcome for %s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	return runID, nil
}

// Runs returns the most recent runs, newest first, with per-state counts.
func (h *DB) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT r.id, r.sequence_type, r.target_dir, r.started_at, r.finished_at,
			COALESCE(SUM(CASE WHEN o.status = 'succeeded' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN o.status = 'failed' THEN 1 ELSE 0 END), 0)
		FROM runs r
		LEFT JOIN outcomes o ON o.run_id = r.id
		GROUP BY r.id
		ORDER BY r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.SequenceType, &r.TargetDir, &r.StartedAt, &r.FinishedAt, &r.Succeeded, &r.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// Outcomes returns all outcomes of one run, in insertion order.
func (h *DB) Outcomes(ctx context.Context, runID int64) ([]Outcome, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT run_id, sample_id, species, status, cause FROM outcomes WHERE run_id = ? ORDER BY id`,
		runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.RunID, &o.SampleID, &o.Species, &o.Status, &o.Cause); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}

	return outcomes, rows.Err()
}
