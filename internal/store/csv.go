// Package store persists the merged station table: a two-column CSV consumed
// by the mobile app's asset pipeline, and the SQLite seed database the app
// imports at startup.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/palletworks/station-data-tools/internal/domain"
)

// csvHeader is the fixed header row of the station table.
var csvHeader = []string{"station_number", "check_digit"}

// CSVStore reads and rewrites the station_number,check_digit table.
// Writes always replace the whole file; rows are never patched in place.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store for the table at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Path returns the table location.
func (s *CSVStore) Path() string { return s.path }

// Read loads the table. A missing file yields an empty set, not an error —
// the first sync creates it. Malformed rows are reported as issues with
// their row number and skipped; all valid rows are still returned.
func (s *CSVStore) Read() ([]domain.Record, []domain.Issue, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("open station table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read station table: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	var issues []domain.Issue
	if len(rows[0]) != 2 || rows[0][0] != csvHeader[0] || rows[0][1] != csvHeader[1] {
		issues = append(issues, domain.Issue{Row: 1, Message: fmt.Sprintf("unexpected header %v", rows[0])})
	}

	var records []domain.Record
	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) != 2 {
			issues = append(issues, domain.Issue{Row: rowNum, Message: fmt.Sprintf("expected 2 columns, got %d", len(row))})
			continue
		}
		rec := domain.Record{Code: row[0], CheckDigit: row[1]}
		if err := domain.ValidateRecord(rec); err != nil {
			issues = append(issues, domain.Issue{Row: rowNum, Message: err.Error()})
			continue
		}
		records = append(records, rec)
	}
	return records, issues, nil
}

// Write replaces the table with records sorted ascending by code. The new
// content is staged in the target directory and renamed into place, so a
// failed write leaves the previous table intact.
func (s *CSVStore) Write(records []domain.Record) error {
	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	domain.SortRecords(sorted)

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".station_data-*")
	if err != nil {
		return fmt.Errorf("stage station table: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write station table header: %w", err)
	}
	for _, rec := range sorted {
		if err := w.Write([]string{rec.Code, rec.CheckDigit}); err != nil {
			tmp.Close()
			return fmt.Errorf("write station table row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush station table: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close station table: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace station table: %w", err)
	}
	return nil
}
