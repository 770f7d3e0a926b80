package model

import (
	"errors"
	"fmt"
)

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Zone describes one electricity pricing region.
// Price is £/MWh. Bounds is the polygon outline in draw order; an empty
// Bounds means the zone is priced but not drawn on the map.
//
// Zones are reference data, same lifecycle as BatteryAsset.
type Zone struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Price  float64  `json:"price"`
	Bounds []LatLng `json:"bounds,omitempty"`
}

func (z Zone) Validate() error {
	if z.ID == "" {
		return errors.New("zone id must not be empty")
	}
	if z.Price < 0 {
		return fmt.Errorf("zone %s: price must be >= 0", z.ID)
	}
	return nil
}
