// Command stationctl maintains the Building 3 station check-digit dataset:
// it rebuilds the authored markdown document, syncs recorded check digits
// into the CSV table, reports coverage, renders the warehouse map, seeds the
// mobile app's SQLite database, and serves lookups over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/palletworks/station-data-tools/internal/config"
	"github.com/palletworks/station-data-tools/internal/observability"
)

// CLI declares the stationctl command tree.
type CLI struct {
	Rebuild  RebuildCmd  `cmd:"" help:"Regenerate the station document with all 58 districts."`
	Sync     SyncCmd     `cmd:"" help:"Merge recorded check digits from the document into the CSV table."`
	Coverage CoverageCmd `cmd:"" help:"Report per-aisle check digit coverage."`
	Map      MapCmd      `cmd:"" help:"Render the Building 3 layout as a PDF."`
	Seed     SeedCmd     `cmd:"" help:"Import the CSV table into the SQLite seed database."`
	Lookup   LookupCmd   `cmd:"" help:"Normalize a station code and look up its check digit."`
	Serve    ServeCmd    `cmd:"" help:"Serve check-digit lookups over HTTP."`
}

// appContext carries shared wiring into command Run methods.
type appContext struct {
	ctx    context.Context
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(cfg)

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("stationctl"),
		kong.Description("Maintains the Building 3 station check-digit dataset."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = kctx.Run(&appContext{ctx: ctx, cfg: cfg, logger: logger})
	kctx.FatalIfErrorf(err)
}
