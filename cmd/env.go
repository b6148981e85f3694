package main

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/caprock-civil/backoffice-cli/internal/bids"
	"github.com/caprock-civil/backoffice-cli/internal/collection"
	"github.com/caprock-civil/backoffice-cli/internal/compliance"
	"github.com/caprock-civil/backoffice-cli/internal/db"
	"github.com/caprock-civil/backoffice-cli/internal/fleet"
	"github.com/caprock-civil/backoffice-cli/internal/payroll"
	"github.com/caprock-civil/backoffice-cli/internal/specsearch"
	"github.com/caprock-civil/backoffice-cli/pkg/functions"
)

// appEnv wires the services for one command invocation.
type appEnv struct {
	Payroll    *payroll.Service
	Fleet      *fleet.Service
	Compliance *compliance.Service
	Haul       *bids.Calculator
	Routes     *collection.Set[bids.Route]
	Catalog    []specsearch.Section
	Recent     *specsearch.RecentStore

	pool *pgxpool.Pool
}

// initServices connects the backends and builds the services. A missing or
// unreachable database is not fatal; the services serve demo data instead.
func initServices(ctx context.Context) (*appEnv, error) {
	env := &appEnv{}

	var pool db.Pool = db.UnavailablePool{}
	if cfg.Store.DatabaseURL != "" {
		p, err := db.Open(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			zap.L().Warn("database unavailable, dashboards will serve demo data", zap.Error(err))
		} else {
			env.pool = p
			pool = p
		}
	} else {
		zap.L().Info("no database configured, dashboards will serve demo data")
	}

	var generator functions.Client
	if cfg.Functions.BaseURL != "" {
		generator = functions.New(cfg.Functions.BaseURL,
			functions.WithAnonKey(cfg.Functions.AnonKey),
			functions.WithRateLimit(cfg.Functions.RatePerSec),
			functions.WithHTTPClient(&http.Client{
				Timeout: time.Duration(cfg.Functions.TimeoutSecs) * time.Second,
			}))
	}

	env.Payroll = payroll.NewService(payroll.NewPostgresStore(pool), generator)
	env.Fleet = fleet.NewService(fleet.NewPostgresStore(pool))
	env.Compliance = compliance.NewService(compliance.NewPostgresStore(pool))
	env.Haul = bids.NewCalculator(cfg.Haul)
	env.Routes = bids.NewRouteSet()

	catalog, err := specsearch.LoadCatalog(cfg.Search.CatalogPath)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.Catalog = catalog

	recent, err := specsearch.OpenRecentStore(cfg.Search.RecentDBPath)
	if err != nil {
		zap.L().Warn("recent-search store unavailable", zap.Error(err))
	} else {
		env.Recent = recent
	}

	return env, nil
}

// Close releases the env's connections.
func (e *appEnv) Close() {
	if e.Recent != nil {
		e.Recent.Close() //nolint:errcheck
	}
	if e.pool != nil {
		e.pool.Close()
	}
}
