package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type vehicle struct {
	ID       string
	Unit     string
	Operator string
	Status   string
	Category string
	Miles    float64
}

var testFleet = []vehicle{
	{ID: "v1", Unit: "T-101", Operator: "R. Alvarez", Status: "active", Category: "dump_truck", Miles: 20},
	{ID: "v2", Unit: "T-102", Operator: "D. Okafor", Status: "maintenance", Category: "dump_truck", Miles: 5},
	{ID: "v3", Unit: "EX-7", Operator: "J. Whitfield", Status: "active", Category: "excavator", Miles: 12},
	{ID: "v4", Unit: "T-103", Operator: "R. Alvarez", Status: "inactive", Category: "dump_truck", Miles: 20},
}

func vehicleText(v vehicle) []string {
	return []string{v.Unit, v.Operator, v.ID}
}

func vehicleCats(v vehicle) map[string]string {
	return map[string]string{"status": v.Status, "category": v.Category}
}

func TestApply_IsSubset(t *testing.T) {
	f := Filter{Query: "t-10", Categories: map[string]string{"status": "active"}}
	got := Apply(testFleet, f, vehicleText, vehicleCats)

	byID := make(map[string]vehicle)
	for _, v := range testFleet {
		byID[v.ID] = v
	}
	for _, v := range got {
		assert.Contains(t, byID, v.ID)
		assert.True(t, Matches(v, f, vehicleText, vehicleCats))
	}
	assert.Equal(t, []vehicle{testFleet[0]}, got)
}

func TestApply_Idempotent(t *testing.T) {
	f := Filter{Query: "alvarez", Categories: map[string]string{"category": "dump_truck"}}
	once := Apply(testFleet, f, vehicleText, vehicleCats)
	twice := Apply(once, f, vehicleText, vehicleCats)
	assert.Equal(t, once, twice)
}

func TestApply_BlankQueryIsNoOp(t *testing.T) {
	noFilter := Apply(testFleet, Filter{}, vehicleText, vehicleCats)
	blank := Apply(testFleet, Filter{Query: "   "}, vehicleText, vehicleCats)
	assert.Equal(t, noFilter, blank)
	assert.Equal(t, testFleet, blank)
}

func TestApply_AllSentinelPassesThrough(t *testing.T) {
	f := Filter{Categories: map[string]string{"status": All, "category": ""}}
	got := Apply(testFleet, f, vehicleText, vehicleCats)
	assert.Equal(t, testFleet, got)
}

func TestMatches_CaseInsensitive(t *testing.T) {
	f := Filter{Query: "OKAFOR"}
	assert.True(t, Matches(testFleet[1], f, vehicleText, vehicleCats))
	assert.False(t, Matches(testFleet[0], f, vehicleText, vehicleCats))
}

func TestMatches_AllPredicatesMustHold(t *testing.T) {
	// Text matches but category does not.
	f := Filter{Query: "ex-7", Categories: map[string]string{"status": "inactive"}}
	assert.False(t, Matches(testFleet[2], f, vehicleText, vehicleCats))
}

func TestSortBy_StableOnTies(t *testing.T) {
	sorted := SortBy(testFleet, func(v vehicle) float64 { return v.Miles })
	// v1 and v4 tie at 20 miles; v1 appeared first and must stay first.
	assert.Equal(t, []string{"v2", "v3", "v1", "v4"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID, sorted[3].ID})
	// Input untouched.
	assert.Equal(t, "v1", testFleet[0].ID)
}

func TestGroupBy_PreservesOrder(t *testing.T) {
	g := GroupBy(testFleet, func(v vehicle) string { return v.Category })
	assert.Equal(t, []string{"dump_truck", "excavator"}, g.Keys)
	assert.Len(t, g.Groups["dump_truck"], 3)
	assert.Equal(t, "v1", g.Groups["dump_truck"][0].ID)
	assert.Equal(t, "v4", g.Groups["dump_truck"][2].ID)
}

func TestPercent_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Percent(5, 0))
	assert.Equal(t, 50.0, Percent(1, 2))
	assert.Equal(t, 66.7, Percent(2, 3))
}

func TestCountBy(t *testing.T) {
	counts := CountBy(testFleet, func(v vehicle) string { return v.Status })
	assert.Equal(t, map[string]int{"active": 2, "maintenance": 1, "inactive": 1}, counts)
}

func TestSumBy_Empty(t *testing.T) {
	assert.Equal(t, 0.0, SumBy(nil, func(v vehicle) float64 { return v.Miles }))
}
