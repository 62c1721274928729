package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"stenocodec/internal/config"
)

// Store manages the run ledger backed by SQLite. Concurrent processes are
// serialized through a flock held for the lifetime of the store.
type Store struct {
	db       *sql.DB
	path     string
	lockPath string
	lock     *flock.Flock
}

// Open initializes or connects to the run database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "runs.db")
	lockPath := dbPath + ".lock"
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run ledger lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another stenocodec process holds the run ledger")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
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
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lockPath: lockPath, lock: lock}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the SQLite database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection and releases the ledger lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Begin records the start of an encode or decode run.
func (s *Store) Begin(ctx context.Context, kind Kind, scheme, inputPath string) (*Run, error) {
	run := &Run{
		ID:        uuid.NewString(),
		Kind:      kind,
		Scheme:    scheme,
		InputPath: inputPath,
		Status:    StatusRunning,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (id, kind, scheme, input_path, status, started_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID,
		string(run.Kind),
		run.Scheme,
		run.InputPath,
		string(run.Status),
		run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Finish marks a run completed and persists its final counters.
func (s *Store) Finish(ctx context.Context, run *Run) error {
	if run == nil {
		return errors.New("run is nil")
	}
	now := time.Now().UTC()
	run.Status = StatusCompleted
	run.FinishedAt = &now

	_, err := s.db.ExecContext(
		ctx,
		`UPDATE runs
         SET output_path = ?, records = ?, tokens = ?, dropped_tokens = ?,
             replaced_tokens = ?, status = ?, finished_at = ?
         WHERE id = ?`,
		nullableString(run.OutputPath),
		run.Records,
		run.Tokens,
		run.DroppedTokens,
		run.ReplacedTokens,
		string(run.Status),
		now.Format(time.RFC3339Nano),
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// Fail marks a run failed with the given message.
func (s *Store) Fail(ctx context.Context, id, message string) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`UPDATE runs SET status = ?, error_message = ?, finished_at = ? WHERE id = ?`,
		string(StatusFailed),
		nullableString(message),
		now.Format(time.RFC3339Nano),
		id,
	)
	if err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return nil
}

// GetByID fetches a run by identifier.
func (s *Store) GetByID(ctx context.Context, id string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

// List returns the most recent runs, newest first. Statuses narrow the result
// before the limit applies, so a filtered listing reaches past newer runs of
// other statuses. A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int, statuses ...Status) ([]*Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs`
	args := []any{}
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, status := range statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		query += ` WHERE status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY started_at DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

const runColumns = `id, kind, scheme, input_path, output_path, records, tokens,
    dropped_tokens, replaced_tokens, status, error_message, started_at, finished_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run          Run
		kind         string
		status       string
		outputPath   sql.NullString
		errorMessage sql.NullString
		startedAt    string
		finishedAt   sql.NullString
	)
	err := row.Scan(
		&run.ID,
		&kind,
		&run.Scheme,
		&run.InputPath,
		&outputPath,
		&run.Records,
		&run.Tokens,
		&run.DroppedTokens,
		&run.ReplacedTokens,
		&status,
		&errorMessage,
		&startedAt,
		&finishedAt,
	)
	if err != nil {
		return nil, err
	}

	run.Kind = Kind(kind)
	run.Status = Status(status)
	run.OutputPath = outputPath.String
	run.ErrorMessage = errorMessage.String

	run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return nil, fmt.Errorf("parse started_at: %w", err)
	}
	if finishedAt.Valid {
		parsed, err := time.Parse(time.RFC3339Nano, finishedAt.String)
		if err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		run.FinishedAt = &parsed
	}
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
