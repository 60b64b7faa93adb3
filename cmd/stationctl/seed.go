package main

import (
	"fmt"

	"github.com/palletworks/station-data-tools/internal/store"
)

// SeedCmd imports the CSV table into the SQLite database shipped with the
// mobile app. Rows are upserted, so re-running after a sync is safe.
type SeedCmd struct {
	CSV string `help:"CSV table to import. Defaults to STATION_CSV." name:"csv" type:"path"`
	DB  string `help:"Seed database path. Defaults to SEED_DB." type:"path"`
}

func (c *SeedCmd) Run(app *appContext) error {
	csvPath := c.CSV
	if csvPath == "" {
		csvPath = app.cfg.CSVPath
	}
	dbPath := c.DB
	if dbPath == "" {
		dbPath = app.cfg.SeedDBPath
	}

	records, issues, err := store.NewCSVStore(csvPath).Read()
	if err != nil {
		return err
	}
	for _, issue := range issues {
		fmt.Printf("table issue: %s\n", issue)
	}
	if len(records) == 0 {
		return fmt.Errorf("no valid records in %s", csvPath)
	}

	db, err := store.OpenSeedDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-side close on exit

	imported, err := db.Import(app.ctx, records)
	if err != nil {
		return err
	}
	total, err := db.Count(app.ctx)
	if err != nil {
		return err
	}

	app.logger.Info("seed database updated", "db", dbPath, "imported", imported, "total", total)
	fmt.Printf("imported %d records into %s (%d total)\n", imported, dbPath, total)
	return nil
}
