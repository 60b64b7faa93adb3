package main

import (
	"fmt"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/palletworks/station-data-tools/internal/store"
)

// LookupCmd normalizes a station code the way the mobile app does and looks
// up its check digit in the seed database.
type LookupCmd struct {
	Code string `arg:"" help:"Station code in any accepted shorthand, e.g. 5822, 58-22, 3-58-22-1."`
	DB   string `help:"Seed database path. Defaults to SEED_DB." type:"path"`
}

func (c *LookupCmd) Run(app *appContext) error {
	dbPath := c.DB
	if dbPath == "" {
		dbPath = app.cfg.SeedDBPath
	}

	normalized := domain.NormalizeCode(c.Code)
	if !domain.IsCanonical(normalized) {
		return fmt.Errorf("%q is not a recognized station code format", c.Code)
	}

	db, err := store.OpenSeedDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-side close on exit

	digit, found, err := db.Lookup(app.ctx, normalized)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no check digit recorded for %s", normalized)
	}

	fmt.Printf("%s  check digit %s\n", normalized, digit)
	return nil
}
