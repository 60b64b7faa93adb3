package main

import (
	"fmt"
	"os"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/palletworks/station-data-tools/internal/markdown"
	"github.com/palletworks/station-data-tools/internal/warehousemap"
)

// MapCmd renders the Building 3 layout PDF from the station document.
type MapCmd struct {
	Source string `help:"Station document to map. Defaults to STATION_MD." type:"path"`
	Output string `help:"Output PDF path. Defaults to a timestamped name." type:"path"`
}

func (c *MapCmd) Run(app *appContext) error {
	source := c.Source
	if source == "" {
		source = app.cfg.MarkdownPath
	}
	output := c.Output
	if output == "" {
		output = fmt.Sprintf("building3-map-%s.pdf", domain.Now().Format("20060102-150405"))
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("read station document: %w", err)
	}
	records := markdown.ParseRecords(string(content))

	if err := warehousemap.Render(output, records); err != nil {
		return err
	}

	app.logger.Info("map rendered", "output", output, "records", len(records))
	fmt.Printf("wrote %s (%d recorded stations)\n", output, len(records))
	return nil
}
