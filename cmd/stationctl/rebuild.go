package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/palletworks/station-data-tools/internal/markdown"
)

// RebuildCmd regenerates the complete station document: districts already
// authored keep their lines, the rest are filled with empty template slots.
type RebuildCmd struct {
	Input  string `help:"Station document to read. Defaults to STATION_MD." type:"path"`
	Output string `help:"Path for the regenerated document." default:"station-numbers-complete.md" type:"path"`
}

func (c *RebuildCmd) Run(app *appContext) error {
	input := c.Input
	if input == "" {
		input = app.cfg.MarkdownPath
	}

	content, err := os.ReadFile(input)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read station document: %w", err)
		}
		app.logger.Warn("station document not found, generating empty template", "path", input)
	}

	doc := markdown.Parse(string(content))
	missing := markdown.MissingDistricts(doc)

	if err := markdown.WriteDocument(c.Output, markdown.RenderComplete(doc)); err != nil {
		return err
	}

	app.logger.Info("document rebuilt",
		"output", c.Output,
		"districts_present", len(doc.Districts),
		"districts_filled", len(missing),
	)
	fmt.Printf("wrote %s: %d districts kept, %d filled with empty templates\n",
		c.Output, len(doc.Districts), len(missing))
	return nil
}
