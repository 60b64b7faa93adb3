package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/palletworks/station-data-tools/internal/domain"
	_ "modernc.org/sqlite"
)

const createStationsTable = `
CREATE TABLE IF NOT EXISTS stations (
	station_number TEXT PRIMARY KEY,
	check_digit    TEXT NOT NULL,
	imported_at    TEXT NOT NULL
)`

// SeedDB is the SQLite database shipped to the mobile app as seed data.
// The app reads it once at import time; this side only ever rebuilds rows
// from the CSV table.
type SeedDB struct {
	db *sql.DB
}

// OpenSeedDB opens (creating if needed) the seed database at path.
func OpenSeedDB(path string) (*SeedDB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("seed database path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open seed database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping seed database: %w", err)
	}
	if _, err := db.Exec(createStationsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create stations table: %w", err)
	}
	return &SeedDB{db: db}, nil
}

// Close closes the underlying database.
func (s *SeedDB) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Import upserts records into the stations table in one transaction and
// returns the number of rows written. Existing codes take the new digit.
func (s *SeedDB) Import(ctx context.Context, records []domain.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (station_number, check_digit, imported_at)
		VALUES (?, ?, ?)
		ON CONFLICT(station_number) DO UPDATE SET
			check_digit = excluded.check_digit,
			imported_at = excluded.imported_at`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	importedAt := domain.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Code, rec.CheckDigit, importedAt); err != nil {
			return 0, fmt.Errorf("import %s: %w", rec.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(records), nil
}

// Lookup returns the check digit for a canonical code.
func (s *SeedDB) Lookup(ctx context.Context, code string) (string, bool, error) {
	var digit string
	err := s.db.QueryRowContext(ctx,
		`SELECT check_digit FROM stations WHERE station_number = ?`, code).Scan(&digit)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup %s: %w", code, err)
	}
	return digit, true, nil
}

// Count returns the number of seeded stations.
func (s *SeedDB) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stations: %w", err)
	}
	return n, nil
}

// CheckReadiness reports whether the database can serve lookups: it must be
// reachable and hold at least one station.
func (s *SeedDB) CheckReadiness(ctx context.Context) error {
	n, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.New("seed database has no stations")
	}
	return nil
}
