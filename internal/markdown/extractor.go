package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/palletworks/station-data-tools/internal/domain"
)

// Extractor reads the station document from disk and yields its recorded
// records. It implements pipeline.Extractor.
type Extractor struct {
	path   string
	logger *slog.Logger
}

// NewExtractor creates an Extractor for the document at path.
func NewExtractor(path string, logger *slog.Logger) *Extractor {
	return &Extractor{path: path, logger: logger}
}

// Extract parses the document and returns every record with a check digit.
// A missing document is an error; nothing has been written at that point.
func (e *Extractor) Extract(_ context.Context) ([]domain.Record, error) {
	content, err := os.ReadFile(e.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("station document not found at %q", e.path)
		}
		return nil, fmt.Errorf("read station document: %w", err)
	}

	records := ParseRecords(string(content))
	e.logger.Info("extracted station records", "path", e.path, "records", len(records))
	return records, nil
}

// WriteDocument writes content as a whole new file, staged in the target
// directory and renamed into place so a failed write never corrupts the
// existing document.
func WriteDocument(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".station-numbers-*")
	if err != nil {
		return fmt.Errorf("stage document: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
