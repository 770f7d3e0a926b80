package derive

import (
	"testing"

	"battery-atlas/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", StatusColor(model.StatusOperational))
	assert.Equal(t, "yellow", StatusColor(model.StatusConstruction))
	assert.Equal(t, "blue", StatusColor(model.StatusPlanned))

	// defined variants all get distinct colors
	seen := map[string]bool{}
	for _, s := range []model.Status{
		model.StatusOperational, model.StatusConstruction, model.StatusPlanned,
	} {
		c := StatusColor(s)
		assert.False(t, seen[c], "color %s reused", c)
		seen[c] = true
	}

	// anything outside the enumeration falls back, never fails
	assert.Equal(t, FallbackColor, StatusColor("retired"))
	assert.Equal(t, FallbackColor, StatusColor(""))
}

func TestMarkerSizeThresholds(t *testing.T) {
	cases := []struct {
		voltageKV int
		want      SizeTier
	}{
		{500, SizeLarge},
		{400, SizeLarge}, // inclusive lower bound
		{399, SizeMedium},
		{275, SizeMedium}, // inclusive lower bound
		{274, SizeSmall},
		{132, SizeSmall},
		{1, SizeSmall},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MarkerSize(tc.voltageKV), "voltage %d kV", tc.voltageKV)
	}
}

func TestMarkerSizeMonotonic(t *testing.T) {
	rank := map[SizeTier]int{SizeSmall: 0, SizeMedium: 1, SizeLarge: 2}
	prev := 0
	for v := 1; v <= 600; v++ {
		cur := rank[MarkerSize(v)]
		require.GreaterOrEqual(t, cur, prev, "tier shrank at %d kV", v)
		prev = cur
	}
}

func TestTotalCapacity(t *testing.T) {
	assets := []model.BatteryAsset{
		{ID: "1", CapacityMW: 50},
		{ID: "2", CapacityMW: 30},
		{ID: "3", CapacityMW: 20.5},
	}
	assert.InDelta(t, 100.5, TotalCapacity(assets), 1e-9)

	// order-independent
	reversed := []model.BatteryAsset{assets[2], assets[1], assets[0]}
	assert.Equal(t, TotalCapacity(assets), TotalCapacity(reversed))

	assert.Zero(t, TotalCapacity(nil))
}

func TestAverageZonePrice(t *testing.T) {
	zones := []model.Zone{
		{ID: "a", Price: 80},
		{ID: "b", Price: 90},
		{ID: "c", Price: 85},
	}
	avg, err := AverageZonePrice(zones)
	require.NoError(t, err)
	assert.InDelta(t, 85.0, avg, 1e-9)

	_, err = AverageZonePrice(nil)
	assert.ErrorIs(t, err, ErrNoZones)
	_, err = AverageZonePrice([]model.Zone{})
	assert.ErrorIs(t, err, ErrNoZones)
}

func TestSummarize(t *testing.T) {
	assets := []model.BatteryAsset{
		{ID: "1", VoltageKV: 400, CapacityMW: 50, Status: model.StatusOperational},
		{ID: "2", VoltageKV: 132, CapacityMW: 30, Status: model.StatusPlanned},
	}
	zones := []model.Zone{{ID: "z", Price: 85.5}}

	s := Summarize(assets, zones)
	assert.Equal(t, 2, s.AssetCount)
	assert.InDelta(t, 80.0, s.TotalCapacityMW, 1e-9)
	assert.Equal(t, 1, s.ZoneCount)
	assert.True(t, s.AveragePriceKnown)
	assert.InDelta(t, 85.5, s.AverageZonePrice, 1e-9)
	assert.Equal(t, 1, s.StatusCounts[model.StatusOperational])
	assert.Equal(t, 1, s.StatusCounts[model.StatusPlanned])
	assert.Zero(t, s.StatusCounts[model.StatusConstruction])
}

func TestSummarizeEmptyZones(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Zero(t, s.AssetCount)
	assert.False(t, s.AveragePriceKnown, "empty zone list must flag the average unavailable")
	assert.Zero(t, s.AverageZonePrice)
}

// The concrete two-asset scenario from the dashboard's acceptance notes.
func TestTwoAssetScenario(t *testing.T) {
	a1 := model.BatteryAsset{ID: "1", VoltageKV: 400, CapacityMW: 50, Status: model.StatusOperational}
	a2 := model.BatteryAsset{ID: "2", VoltageKV: 132, CapacityMW: 30, Status: model.StatusPlanned}

	assert.InDelta(t, 80.0, TotalCapacity([]model.BatteryAsset{a1, a2}), 1e-9)
	assert.Equal(t, SizeLarge, MarkerSize(a1.VoltageKV))
	assert.Equal(t, "blue", StatusColor(a2.Status))
}
