// Package registry holds the immutable in-memory asset and zone registries.
// Both are constructed once at startup from reference data and are safe for
// concurrent readers; there are no mutation operations.
package registry

import (
	"fmt"

	"battery-atlas/internal/model"
)

// AssetRegistry is an ordered, read-only collection of battery assets.
type AssetRegistry struct {
	assets []model.BatteryAsset
	byID   map[string]int
}

// NewAssetRegistry validates the records and builds a registry preserving
// insertion order. Duplicate IDs are rejected.
func NewAssetRegistry(assets []model.BatteryAsset) (*AssetRegistry, error) {
	r := &AssetRegistry{
		assets: make([]model.BatteryAsset, len(assets)),
		byID:   make(map[string]int, len(assets)),
	}
	copy(r.assets, assets)
	for i, a := range r.assets {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate asset id %q", a.ID)
		}
		r.byID[a.ID] = i
	}
	return r, nil
}

// List returns a copy of the registry contents in insertion order.
func (r *AssetRegistry) List() []model.BatteryAsset {
	out := make([]model.BatteryAsset, len(r.assets))
	copy(out, r.assets)
	return out
}

// Find returns the asset with the given ID, if present.
func (r *AssetRegistry) Find(id string) (model.BatteryAsset, bool) {
	i, ok := r.byID[id]
	if !ok {
		return model.BatteryAsset{}, false
	}
	return r.assets[i], true
}

func (r *AssetRegistry) Len() int {
	return len(r.assets)
}

// ZoneRegistry is an ordered, read-only collection of pricing zones.
type ZoneRegistry struct {
	zones []model.Zone
	byID  map[string]int
}

func NewZoneRegistry(zones []model.Zone) (*ZoneRegistry, error) {
	r := &ZoneRegistry{
		zones: make([]model.Zone, len(zones)),
		byID:  make(map[string]int, len(zones)),
	}
	copy(r.zones, zones)
	for i, z := range r.zones {
		if err := z.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[z.ID]; dup {
			return nil, fmt.Errorf("duplicate zone id %q", z.ID)
		}
		r.byID[z.ID] = i
	}
	return r, nil
}

func (r *ZoneRegistry) List() []model.Zone {
	out := make([]model.Zone, len(r.zones))
	copy(out, r.zones)
	return out
}

func (r *ZoneRegistry) Find(id string) (model.Zone, bool) {
	i, ok := r.byID[id]
	if !ok {
		return model.Zone{}, false
	}
	return r.zones[i], true
}

func (r *ZoneRegistry) Len() int {
	return len(r.zones)
}
