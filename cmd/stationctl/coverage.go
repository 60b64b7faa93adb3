package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/palletworks/station-data-tools/internal/coverage"
	"github.com/palletworks/station-data-tools/internal/markdown"
	"github.com/palletworks/station-data-tools/internal/store"
)

// CoverageCmd reports which stations have recorded check digits, aisle by
// aisle, and compares the markdown document against the CSV table.
type CoverageCmd struct {
	Markdown string `help:"Station document to compare against. Defaults to STATION_MD." type:"path"`
	CSV      string `help:"CSV table to analyze. Defaults to STATION_CSV." name:"csv" type:"path"`
}

func (c *CoverageCmd) Run(app *appContext) error {
	mdPath := c.Markdown
	if mdPath == "" {
		mdPath = app.cfg.MarkdownPath
	}
	csvPath := c.CSV
	if csvPath == "" {
		csvPath = app.cfg.CSVPath
	}

	csvRecords, issues, err := store.NewCSVStore(csvPath).Read()
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Printf("table issue: %s\n", issue)
	}

	coverage.WriteReport(os.Stdout, coverage.Analyze(csvRecords))

	content, err := os.ReadFile(mdPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			app.logger.Warn("station document not found, skipping comparison", "path", mdPath)
			return nil
		}
		return fmt.Errorf("read station document: %w", err)
	}

	fmt.Println()
	coverage.WriteComparison(os.Stdout, coverage.Compare(markdown.ParseRecords(string(content)), csvRecords))
	return nil
}
