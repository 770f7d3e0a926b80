package model

import (
	"errors"
	"fmt"
)

// Status is the lifecycle state of a battery asset. The enumeration is
// closed: anything outside the three constants below fails Validate, and
// presentation code falls back to a neutral visual for unknown values.
type Status string

const (
	StatusOperational  Status = "operational"
	StatusConstruction Status = "construction"
	StatusPlanned      Status = "planned"
)

// Valid reports whether s is one of the defined variants.
func (s Status) Valid() bool {
	switch s {
	case StatusOperational, StatusConstruction, StatusPlanned:
		return true
	}
	return false
}

// ParseStatus converts a raw string into a Status, rejecting anything
// outside the closed enumeration.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown asset status %q", raw)
	}
	return s, nil
}

// BatteryAsset describes one battery energy-storage installation.
// Units:
// - VoltageKV: kV (grid connection voltage; 132/275/400 on the GB network)
// - CapacityMW: MW
// - ZonePrice: £/MWh
// - Lat/Lng: WGS84 degrees
//
// Assets are reference data: constructed once at startup and never mutated.
type BatteryAsset struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Region     string  `json:"region"`
	VoltageKV  int     `json:"voltage_kv"`
	CapacityMW float64 `json:"capacity_mw"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Status     Status  `json:"status"`
	ZonePrice  float64 `json:"zone_price"`
}

func (a BatteryAsset) Validate() error {
	if a.ID == "" {
		return errors.New("asset id must not be empty")
	}
	if a.VoltageKV <= 0 {
		return fmt.Errorf("asset %s: voltage_kv must be > 0", a.ID)
	}
	if a.CapacityMW < 0 {
		return fmt.Errorf("asset %s: capacity_mw must be >= 0", a.ID)
	}
	if a.ZonePrice < 0 {
		return fmt.Errorf("asset %s: zone_price must be >= 0", a.ID)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("asset %s: unknown status %q", a.ID, string(a.Status))
	}
	return nil
}
