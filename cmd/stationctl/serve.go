package main

import (
	"context"
	"errors"
	"net/http"

	httpadapter "github.com/palletworks/station-data-tools/internal/adapter/http"
	"github.com/palletworks/station-data-tools/internal/observability"
	"github.com/palletworks/station-data-tools/internal/store"
)

// ServeCmd serves check-digit lookups from the seed database over HTTP.
// Useful for spot-checking the dataset the app will ship with.
type ServeCmd struct {
	DB   string `help:"Seed database path. Defaults to SEED_DB." type:"path"`
	Addr string `help:"Listen address. Defaults to HTTP_ADDR."`
}

func (c *ServeCmd) Run(app *appContext) error {
	dbPath := c.DB
	if dbPath == "" {
		dbPath = app.cfg.SeedDBPath
	}
	addr := c.Addr
	if addr == "" {
		addr = app.cfg.HTTPAddr
	}

	db, err := store.OpenSeedDB(dbPath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-side close on exit

	metrics := observability.NewMetrics()
	srv := httpadapter.NewServer(addr, db, metrics, app.logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-app.ctx.Done():
	}

	app.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
