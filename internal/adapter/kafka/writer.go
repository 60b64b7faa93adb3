// Package kafka publishes dataset changes for downstream consumers that
// mirror the station table.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/palletworks/station-data-tools/internal/config"
	"github.com/palletworks/station-data-tools/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces station record updates to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured updates topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// recordUpdate is the published message body.
type recordUpdate struct {
	StationNumber string `json:"station_number"`
	CheckDigit    string `json:"check_digit"`
	UpdatedAt     string `json:"updated_at"`
}

// PublishBatch serializes and publishes the changed records in a single
// WriteMessages call, keyed by station number so consumers can compact.
func (w *Writer) PublishBatch(ctx context.Context, records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}

	updatedAt := domain.Now().UTC().Format(time.RFC3339)
	msgs := make([]kafkago.Message, len(records))
	for i, rec := range records {
		data, err := json.Marshal(recordUpdate{
			StationNumber: rec.Code,
			CheckDigit:    rec.CheckDigit,
			UpdatedAt:     updatedAt,
		})
		if err != nil {
			return fmt.Errorf("serialize record %s: %w", rec.Code, err)
		}
		msgs[i] = kafkago.Message{
			Key:   []byte(rec.Code),
			Value: data,
			Headers: []kafkago.Header{
				{Key: "updated_at", Value: []byte(updatedAt)},
			},
		}
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

// Close closes the underlying producer.
func (w *Writer) Close() error {
	return w.writer.Close()
}
