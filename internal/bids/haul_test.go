package bids

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caprock-civil/backoffice-cli/internal/collection"
	"github.com/caprock-civil/backoffice-cli/internal/config"
)

func defaultHaulConfig() config.HaulConfig {
	return config.HaulConfig{
		CostPerMile: 4.50,
		LoadMinutes: 15,
		TonsPerLoad: 22,
	}
}

func TestHaul(t *testing.T) {
	calc := NewCalculator(defaultHaulConfig())

	r := calc.Haul(HaulInput{DistanceMiles: 20, TravelMinutes: 30})

	assert.Equal(t, 40.0, r.RoundTripMiles)
	assert.Equal(t, 75.0, r.RoundTripMinutes)
	assert.InDelta(t, 0.8, r.LoadsPerHour, 1e-9)
	assert.Equal(t, "180", r.CostPerLoad.String())
	assert.Equal(t, "8.18", r.CostPerTon.StringFixed(2))
}

func TestHaul_LoadTimeCountsOncePerCycle(t *testing.T) {
	cfg := defaultHaulConfig()
	cfg.LoadMinutes = 20
	calc := NewCalculator(cfg)

	r := calc.Haul(HaulInput{DistanceMiles: 10, TravelMinutes: 30})

	assert.Equal(t, 80.0, r.RoundTripMinutes)
	assert.InDelta(t, 0.75, r.LoadsPerHour, 1e-9)
}

func TestHaul_ZeroInput(t *testing.T) {
	calc := NewCalculator(config.HaulConfig{})

	r := calc.Haul(HaulInput{})

	assert.Equal(t, 0.0, r.RoundTripMinutes)
	assert.Equal(t, 0.0, r.LoadsPerHour)
	assert.True(t, r.CostPerLoad.IsZero())
	assert.True(t, r.CostPerTon.IsZero())
}

func TestSortRoutes(t *testing.T) {
	routes := DemoRoutes()

	sorted := SortRoutes(routes)

	assert.Equal(t, "demo-rt-3", sorted[0].ID)
	assert.Equal(t, "demo-rt-2", sorted[1].ID)
	assert.Equal(t, "demo-rt-1", sorted[2].ID)
	// Input untouched.
	assert.Equal(t, "demo-rt-1", routes[0].ID)
}

func TestNewRouteSet(t *testing.T) {
	ctx := context.Background()
	set := NewRouteSet()
	require.Equal(t, 3, set.Len())

	route := Route{ID: collection.NewID(), Name: "North Pit to Bridge 7",
		DistanceMiles: 5.5, TravelMinutes: 12}
	outcome, err := set.Add(ctx, route)
	require.NoError(t, err)
	assert.Equal(t, collection.LocalOnly, outcome)
	assert.Equal(t, 4, set.Len())

	_, err = set.Add(ctx, route)
	assert.Error(t, err, "duplicate id should be rejected")

	_, err = set.Remove(ctx, route.ID)
	require.NoError(t, err)
	ids := make([]string, 0, set.Len())
	for _, r := range set.Records() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"demo-rt-1", "demo-rt-2", "demo-rt-3"}, ids)
}
