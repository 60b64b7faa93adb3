// Package pipeline orchestrates the one-shot sync that carries recorded
// check digits from the markdown document into the CSV table.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/palletworks/station-data-tools/internal/observability"
)

// Extractor yields the authored records from the source document.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.Record, error)
}

// Store reads the current table and rewrites it whole.
type Store interface {
	Read() ([]domain.Record, []domain.Issue, error)
	Write(records []domain.Record) error
}

// Publisher pushes new and updated records to downstream consumers.
type Publisher interface {
	PublishBatch(ctx context.Context, records []domain.Record) error
}

// Result summarizes one sync run.
type Result struct {
	Extracted int
	New       int
	Updated   int
	Total     int
	Issues    []domain.Issue
}

// Sync runs extract-merge-write with optional publishing.
type Sync struct {
	extractor Extractor
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Sync. Pass a nil publisher to disable downstream publishing.
func New(e Extractor, s Store, p Publisher, logger *slog.Logger, metrics *observability.Metrics) *Sync {
	return &Sync{
		extractor: e,
		store:     s,
		publisher: p,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes one sync. Malformed source records and table rows become
// issues in the result; they never abort the run. Nothing is written when
// extraction or the table read fails, so a failed run has zero side effects.
func (s *Sync) Run(ctx context.Context) (Result, error) {
	start := time.Now()

	extracted, err := s.extractor.Extract(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("extract: %w", err)
	}
	s.metrics.RecordsExtracted.Add(float64(len(extracted)))

	var result Result
	result.Extracted = len(extracted)

	valid := make([]domain.Record, 0, len(extracted))
	for i, rec := range extracted {
		if err := domain.ValidateRecord(rec); err != nil {
			result.Issues = append(result.Issues, domain.Issue{
				Row:     i + 1,
				Message: fmt.Sprintf("%s: %v", rec.Code, err),
			})
			s.metrics.ValidationIssues.Inc()
			continue
		}
		valid = append(valid, rec)
	}

	existing, tableIssues, err := s.store.Read()
	if err != nil {
		return Result{}, fmt.Errorf("read table: %w", err)
	}
	result.Issues = append(result.Issues, tableIssues...)
	s.metrics.ValidationIssues.Add(float64(len(tableIssues)))

	merged, changed, stats := domain.Merge(existing, valid)
	result.New = stats.New
	result.Updated = stats.Updated
	result.Total = len(merged)

	if err := s.store.Write(merged); err != nil {
		return Result{}, fmt.Errorf("write table: %w", err)
	}
	s.metrics.RecordsWritten.Add(float64(len(merged)))
	s.metrics.DatasetSize.Set(float64(len(merged)))

	if s.publisher != nil && len(changed) > 0 {
		if err := s.publisher.PublishBatch(ctx, changed); err != nil {
			// The table is already written; publishing is best effort.
			s.logger.Warn("publish changed records failed", "error", err, "records", len(changed))
		} else {
			s.logger.Info("published changed records", "records", len(changed))
		}
	}

	s.metrics.SyncDuration.Observe(time.Since(start).Seconds())
	s.logger.Info("sync complete",
		"extracted", result.Extracted,
		"new", result.New,
		"updated", result.Updated,
		"total", result.Total,
		"issues", len(result.Issues),
	)
	return result, nil
}
