// Package derive contains the pure presentation and aggregation functions
// of the dashboard: marker visuals derived from domain attributes, and the
// summary statistics shown in the header. Nothing in here holds state.
package derive

import (
	"errors"

	"battery-atlas/internal/model"
)

// ErrNoZones is returned by AverageZonePrice when the zone registry is
// empty. Callers render "N/A" instead of propagating a numeric error value.
var ErrNoZones = errors.New("no zones to average")

// Marker colors keyed by asset status. Values are CSS color names the map
// layer resolves; FallbackColor covers any status added without a mapping.
const (
	ColorOperational  = "green"
	ColorConstruction = "yellow"
	ColorPlanned      = "blue"
	FallbackColor     = "gray"
)

// StatusColor maps an asset status to its marker color. Total over any
// input: unknown statuses get FallbackColor, never an error. Extending
// model.Status means extending this switch.
func StatusColor(s model.Status) string {
	switch s {
	case model.StatusOperational:
		return ColorOperational
	case model.StatusConstruction:
		return ColorConstruction
	case model.StatusPlanned:
		return ColorPlanned
	default:
		return FallbackColor
	}
}

// SizeTier is the marker size class derived from connection voltage.
type SizeTier string

const (
	SizeLarge  SizeTier = "large"
	SizeMedium SizeTier = "medium"
	SizeSmall  SizeTier = "small"
)

// Voltage thresholds are inclusive at the lower bound of each tier:
// exactly 400 kV is large, exactly 275 kV is medium.
const (
	largeTierMinKV  = 400
	mediumTierMinKV = 275
)

// MarkerSize maps connection voltage to a marker size tier.
func MarkerSize(voltageKV int) SizeTier {
	switch {
	case voltageKV >= largeTierMinKV:
		return SizeLarge
	case voltageKV >= mediumTierMinKV:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// TotalCapacity sums CapacityMW across the given assets. The sum is
// order-independent; callers may pass the registry snapshot directly.
func TotalCapacity(assets []model.BatteryAsset) float64 {
	var total float64
	for _, a := range assets {
		total += a.CapacityMW
	}
	return total
}

// AverageZonePrice computes the arithmetic mean of zone prices in £/MWh.
// Returns ErrNoZones on an empty slice rather than NaN.
func AverageZonePrice(zones []model.Zone) (float64, error) {
	if len(zones) == 0 {
		return 0, ErrNoZones
	}
	var total float64
	for _, z := range zones {
		total += z.Price
	}
	return total / float64(len(zones)), nil
}

// Summary is the aggregate view rendered in the dashboard header.
// AveragePriceKnown is false when the zone registry is empty, in which
// case AverageZonePrice is zero and presentation shows "N/A".
type Summary struct {
	AssetCount        int                  `json:"asset_count"`
	TotalCapacityMW   float64              `json:"total_capacity_mw"`
	ZoneCount         int                  `json:"zone_count"`
	AverageZonePrice  float64              `json:"average_zone_price"`
	AveragePriceKnown bool                 `json:"average_price_known"`
	StatusCounts      map[model.Status]int `json:"status_counts"`
}

// Summarize folds both registries into a Summary. Recomputed on every call;
// at registry scale there is nothing worth caching.
func Summarize(assets []model.BatteryAsset, zones []model.Zone) Summary {
	s := Summary{
		AssetCount:      len(assets),
		TotalCapacityMW: TotalCapacity(assets),
		ZoneCount:       len(zones),
		StatusCounts:    make(map[model.Status]int, 3),
	}
	for _, a := range assets {
		s.StatusCounts[a.Status]++
	}
	if avg, err := AverageZonePrice(zones); err == nil {
		s.AverageZonePrice = avg
		s.AveragePriceKnown = true
	}
	return s
}
