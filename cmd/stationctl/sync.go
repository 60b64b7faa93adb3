package main

import (
	"fmt"

	kafkaadapter "github.com/palletworks/station-data-tools/internal/adapter/kafka"
	"github.com/palletworks/station-data-tools/internal/markdown"
	"github.com/palletworks/station-data-tools/internal/observability"
	"github.com/palletworks/station-data-tools/internal/pipeline"
	"github.com/palletworks/station-data-tools/internal/store"
)

// SyncCmd extracts recorded check digits from the station document and
// merges them into the CSV table, last write wins. With KAFKA_ENABLED the
// changed records are also published downstream.
type SyncCmd struct {
	Markdown string `help:"Station document to extract from. Defaults to STATION_MD." type:"path"`
	CSV      string `help:"CSV table to update. Defaults to STATION_CSV." name:"csv" type:"path"`
}

func (c *SyncCmd) Run(app *appContext) error {
	mdPath := c.Markdown
	if mdPath == "" {
		mdPath = app.cfg.MarkdownPath
	}
	csvPath := c.CSV
	if csvPath == "" {
		csvPath = app.cfg.CSVPath
	}

	metrics := observability.NewMetrics()

	var publisher pipeline.Publisher
	if app.cfg.KafkaEnabled {
		w := kafkaadapter.NewWriter(app.cfg, app.logger)
		defer w.Close() //nolint:errcheck // best-effort close on exit
		publisher = w
		app.logger.Info("kafka publishing enabled", "topic", app.cfg.KafkaTopic)
	}

	s := pipeline.New(
		markdown.NewExtractor(mdPath, app.logger),
		store.NewCSVStore(csvPath),
		publisher,
		app.logger,
		metrics,
	)

	result, err := s.Run(app.ctx)
	if err != nil {
		return err
	}

	fmt.Printf("extracted %d records from %s\n", result.Extracted, mdPath)
	fmt.Printf("new: %d, updated: %d, total in table: %d\n", result.New, result.Updated, result.Total)
	if len(result.Issues) > 0 {
		fmt.Printf("issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue)
		}
	}
	return nil
}
