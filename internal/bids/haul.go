package bids

import (
	"github.com/shopspring/decimal"

	"github.com/caprock-civil/backoffice-cli/internal/collection"
	"github.com/caprock-civil/backoffice-cli/internal/config"
	"github.com/caprock-civil/backoffice-cli/internal/query"
)

// HaulInput is the haul economics calculator input. Distance and travel time
// are one-way.
type HaulInput struct {
	DistanceMiles float64 `json:"distance_miles"`
	TravelMinutes float64 `json:"travel_minutes"`
}

// HaulResult is the per-load economics of one haul route.
type HaulResult struct {
	RoundTripMiles   float64         `json:"round_trip_miles"`
	RoundTripMinutes float64         `json:"round_trip_minutes"`
	LoadsPerHour     float64         `json:"loads_per_hour"`
	CostPerLoad      decimal.Decimal `json:"cost_per_load"`
	CostPerTon       decimal.Decimal `json:"cost_per_ton"`
}

// Calculator computes haul economics with the configured rates.
type Calculator struct {
	cfg config.HaulConfig
}

// NewCalculator creates a Calculator.
func NewCalculator(cfg config.HaulConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Haul computes round-trip economics for one route. Each cycle is drive
// out, drive back, plus the fixed load-and-unload time.
func (c *Calculator) Haul(in HaulInput) HaulResult {
	rtMiles := 2 * in.DistanceMiles
	rtMinutes := 2*in.TravelMinutes + c.cfg.LoadMinutes

	loadsPerHour := 0.0
	if rtMinutes > 0 {
		loadsPerHour = 60 / rtMinutes
	}

	costPerLoad := decimal.NewFromFloat(rtMiles).Mul(decimal.NewFromFloat(c.cfg.CostPerMile))

	costPerTon := decimal.Zero
	if c.cfg.TonsPerLoad > 0 {
		costPerTon = costPerLoad.Div(decimal.NewFromFloat(c.cfg.TonsPerLoad)).Round(2)
	}

	return HaulResult{
		RoundTripMiles:   rtMiles,
		RoundTripMinutes: rtMinutes,
		LoadsPerHour:     loadsPerHour,
		CostPerLoad:      costPerLoad,
		CostPerTon:       costPerTon,
	}
}

// Route is one haul route from a pit or plant to a job site.
type Route struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DistanceMiles float64 `json:"distance_miles"`
	TravelMinutes float64 `json:"travel_minutes"`
}

// SortRoutes returns the routes ordered nearest first. Ties keep their
// input order.
func SortRoutes(routes []Route) []Route {
	return query.SortBy(routes, func(r Route) float64 { return r.DistanceMiles })
}

// NewRouteSet returns the editable route collection, seeded with the
// built-in routes. Estimators add routes per bid; there is no remote store
// behind them.
func NewRouteSet() *collection.Set[Route] {
	return collection.NewSet(func(r Route) string { return r.ID }, nil, DemoRoutes())
}

// DemoRoutes is the built-in route list served when no live source exists.
func DemoRoutes() []Route {
	return []Route{
		{ID: "demo-rt-1", Name: "Shakopee Pit to Hwy 12", Origin: "Shakopee Pit",
			Destination: "Highway 12 Site", DistanceMiles: 20, TravelMinutes: 30},
		{ID: "demo-rt-2", Name: "Elk River Plant to Bridge 7", Origin: "Elk River Plant",
			Destination: "Bridge 7 Site", DistanceMiles: 14.5, TravelMinutes: 24},
		{ID: "demo-rt-3", Name: "Main Yard to Hwy 12", Origin: "Main Yard",
			Destination: "Highway 12 Site", DistanceMiles: 8.2, TravelMinutes: 17},
	}
}
