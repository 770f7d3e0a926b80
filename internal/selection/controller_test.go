package selection

import (
	"testing"

	"battery-atlas/internal/model"
	"battery-atlas/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	assets, err := registry.NewAssetRegistry([]model.BatteryAsset{
		{ID: "1", Name: "One", VoltageKV: 400, CapacityMW: 50, Status: model.StatusOperational},
		{ID: "2", Name: "Two", VoltageKV: 132, CapacityMW: 30, Status: model.StatusPlanned},
	})
	require.NoError(t, err)
	zones, err := registry.NewZoneRegistry([]model.Zone{
		{ID: "south-east", Name: "South East", Price: 85.5},
		{ID: "highlands", Name: "Highlands", Price: 71.2},
	})
	require.NoError(t, err)
	return NewController(assets, zones)
}

func TestInitialStateIsEmpty(t *testing.T) {
	c := newTestController(t)
	s := c.Current()
	assert.Nil(t, s.Asset)
	assert.Empty(t, s.ZoneID)
}

func TestSelectAssetByID(t *testing.T) {
	c := newTestController(t)
	c.SelectAssetID("2")

	s := c.Current()
	require.NotNil(t, s.Asset)
	assert.Equal(t, "2", s.Asset.ID)
}

func TestSelectAssetReplacesWholesale(t *testing.T) {
	c := newTestController(t)
	c.SelectAssetID("1")
	c.SelectAssetID("2")

	s := c.Current()
	require.NotNil(t, s.Asset)
	assert.Equal(t, "2", s.Asset.ID)
}

func TestAxesAreIndependent(t *testing.T) {
	c := newTestController(t)
	c.SelectZone("south-east")
	c.SelectAssetID("1")
	c.SelectAssetID("2")

	s := c.Current()
	assert.Equal(t, "south-east", s.ZoneID, "asset selection must not clear the zone")

	c.SelectZone("highlands")
	s = c.Current()
	require.NotNil(t, s.Asset)
	assert.Equal(t, "2", s.Asset.ID, "zone selection must not clear the asset")
}

func TestZoneReselectionIsIdempotent(t *testing.T) {
	c := newTestController(t)

	var fired int
	c.OnChange(func(Axis, State) { fired++ })

	c.SelectZone("south-east")
	c.SelectZone("south-east")

	assert.Equal(t, "south-east", c.Current().ZoneID)
	assert.Equal(t, 1, fired, "re-selecting the same zone must be a no-op")
}

func TestDanglingIDsDegradeToNoSelection(t *testing.T) {
	c := newTestController(t)
	c.SelectAssetID("1")
	c.SelectAssetID("ghost")
	assert.Nil(t, c.Current().Asset)

	c.SelectZone("south-east")
	c.SelectZone("atlantis")
	assert.Empty(t, c.Current().ZoneID)
}

func TestClearResetsBothAxes(t *testing.T) {
	c := newTestController(t)
	c.SelectAssetID("1")
	c.SelectZone("highlands")
	c.Clear()

	s := c.Current()
	assert.Nil(t, s.Asset)
	assert.Empty(t, s.ZoneID)
}

func TestListenerReceivesAxisAndState(t *testing.T) {
	c := newTestController(t)

	var gotAxis Axis
	var gotState State
	c.OnChange(func(axis Axis, s State) {
		gotAxis = axis
		gotState = s
	})

	c.SelectAssetID("1")
	assert.Equal(t, AxisAsset, gotAxis)
	require.NotNil(t, gotState.Asset)
	assert.Equal(t, "1", gotState.Asset.ID)

	c.SelectZone("highlands")
	assert.Equal(t, AxisZone, gotAxis)
	assert.Equal(t, "highlands", gotState.ZoneID)
	require.NotNil(t, gotState.Asset, "zone change carries the still-selected asset")
}

func TestCurrentReturnsACopy(t *testing.T) {
	c := newTestController(t)
	c.SelectAssetID("1")

	s := c.Current()
	s.Asset.Name = "mutated"

	assert.Equal(t, "One", c.Current().Asset.Name)
}
