package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, raw := range []string{"operational", "construction", "planned"} {
		s, err := ParseStatus(raw)
		require.NoError(t, err)
		assert.True(t, s.Valid())
		assert.Equal(t, raw, string(s))
	}

	_, err := ParseStatus("decommissioned")
	assert.Error(t, err)
	assert.False(t, Status("").Valid())
}

func TestAssetValidate(t *testing.T) {
	valid := BatteryAsset{
		ID:         "pillswood",
		Name:       "Pillswood",
		Region:     "Yorkshire",
		VoltageKV:  275,
		CapacityMW: 98,
		Lat:        53.782,
		Lng:        -0.426,
		Status:     StatusOperational,
		ZonePrice:  79.2,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*BatteryAsset)
	}{
		{"empty id", func(a *BatteryAsset) { a.ID = "" }},
		{"zero voltage", func(a *BatteryAsset) { a.VoltageKV = 0 }},
		{"negative voltage", func(a *BatteryAsset) { a.VoltageKV = -400 }},
		{"negative capacity", func(a *BatteryAsset) { a.CapacityMW = -1 }},
		{"negative price", func(a *BatteryAsset) { a.ZonePrice = -0.01 }},
		{"unknown status", func(a *BatteryAsset) { a.Status = "retired" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := valid
			tc.mutate(&a)
			assert.Error(t, a.Validate())
		})
	}
}

func TestZoneValidate(t *testing.T) {
	z := Zone{ID: "south-east", Name: "South East", Color: "#e8590c", Price: 85.5}
	require.NoError(t, z.Validate())

	// empty bounds means "priced but not drawn", which is fine
	assert.Empty(t, z.Bounds)

	z.Price = -1
	assert.Error(t, z.Validate())

	z = Zone{Name: "nameless", Price: 10}
	assert.Error(t, z.Validate())
}
