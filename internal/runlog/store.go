package runlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists run summaries in SQLite so past imports and exports can be
// inspected after the fact.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    mode TEXT NOT NULL,
    source_locale TEXT NOT NULL,
    target_locale TEXT,
    dry_run INTEGER NOT NULL DEFAULT 0,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    export_ok INTEGER NOT NULL DEFAULT 0,
    export_err INTEGER NOT NULL DEFAULT 0,
    create_ok INTEGER NOT NULL DEFAULT 0,
    create_err INTEGER NOT NULL DEFAULT 0,
    update_ok INTEGER NOT NULL DEFAULT 0,
    update_err INTEGER NOT NULL DEFAULT 0,
    asset_ok INTEGER NOT NULL DEFAULT 0,
    asset_err INTEGER NOT NULL DEFAULT 0,
    warning_count INTEGER NOT NULL DEFAULT 0,
    details_json TEXT
);
`

// Open initializes or connects to the run-history database.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Run is one persisted run summary.
type Run struct {
	ID           string
	Mode         Mode
	SourceLocale string
	TargetLocale string
	DryRun       bool
	StartedAt    time.Time
	FinishedAt   time.Time
	Export       Counts
	Create       Counts
	Update       Counts
	UpdateAsset  Counts
	WarningCount int
	Details      []Entry
}

// Save persists a finished run and returns its assigned id.
func (s *Store) Save(ctx context.Context, summary Summary) (string, error) {
	id := uuid.NewString()

	details := append(append([]Entry{}, summary.Errors...), summary.Warnings...)
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return "", fmt.Errorf("marshal run details: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            id, mode, source_locale, target_locale, dry_run, started_at, finished_at,
            export_ok, export_err, create_ok, create_err, update_ok, update_err,
            asset_ok, asset_err, warning_count, details_json
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		string(summary.Mode),
		summary.SourceLocale,
		nullableString(summary.TargetLocale),
		boolToInt(summary.DryRun),
		summary.Started.Format(time.RFC3339Nano),
		time.Now().UTC().Format(time.RFC3339Nano),
		summary.Export.OK,
		summary.Export.Error,
		summary.Create.OK,
		summary.Create.Error,
		summary.Update.OK,
		summary.Update.Error,
		summary.UpdateAsset.OK,
		summary.UpdateAsset.Error,
		len(summary.Warnings),
		string(detailsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// List returns past runs, newest first, limited to the given count (or all
// runs when limit is zero or negative).
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, mode, source_locale, target_locale, dry_run, started_at, finished_at,
        export_ok, export_err, create_ok, create_err, update_ok, update_err,
        asset_ok, asset_err, warning_count, details_json
        FROM runs ORDER BY started_at DESC`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get fetches one run by id.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, mode, source_locale, target_locale, dry_run, started_at, finished_at,
            export_ok, export_err, create_ok, create_err, update_ok, update_err,
            asset_ok, asset_err, warning_count, details_json
            FROM runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &run, nil
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (Run, error) {
	var (
		run          Run
		mode         string
		targetLocale sql.NullString
		dryRun       int
		startedRaw   string
		finishedRaw  string
		detailsRaw   sql.NullString
	)
	if err := scanner.Scan(
		&run.ID,
		&mode,
		&run.SourceLocale,
		&targetLocale,
		&dryRun,
		&startedRaw,
		&finishedRaw,
		&run.Export.OK,
		&run.Export.Error,
		&run.Create.OK,
		&run.Create.Error,
		&run.Update.OK,
		&run.Update.Error,
		&run.UpdateAsset.OK,
		&run.UpdateAsset.Error,
		&run.WarningCount,
		&detailsRaw,
	); err != nil {
		return Run{}, err
	}

	run.Mode = Mode(mode)
	run.TargetLocale = targetLocale.String
	run.DryRun = dryRun != 0
	if started, err := time.Parse(time.RFC3339Nano, startedRaw); err == nil {
		run.StartedAt = started
	}
	if finished, err := time.Parse(time.RFC3339Nano, finishedRaw); err == nil {
		run.FinishedAt = finished
	}
	if detailsRaw.Valid && detailsRaw.String != "" {
		if err := json.Unmarshal([]byte(detailsRaw.String), &run.Details); err != nil {
			return Run{}, fmt.Errorf("parse run details: %w", err)
		}
	}
	return run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
