package models

import (
	"time"

	"battery-atlas/internal/derive"
	"battery-atlas/internal/model"
	"battery-atlas/internal/selection"
)

// AssetView is a battery asset plus the marker attributes derived from it.
type AssetView struct {
	model.BatteryAsset
	MarkerSize  derive.SizeTier `json:"marker_size"`
	MarkerColor string          `json:"marker_color"`
}

// NewAssetView derives the presentation attributes for one asset.
func NewAssetView(a model.BatteryAsset) AssetView {
	return AssetView{
		BatteryAsset: a,
		MarkerSize:   derive.MarkerSize(a.VoltageKV),
		MarkerColor:  derive.StatusColor(a.Status),
	}
}

// SummaryResponse is the dashboard header payload. AverageZonePrice is
// null when the zone registry is empty; clients render "N/A".
type SummaryResponse struct {
	AssetCount       int                  `json:"asset_count"`
	TotalCapacityMW  float64              `json:"total_capacity_mw"`
	ZoneCount        int                  `json:"zone_count"`
	AverageZonePrice *float64             `json:"average_zone_price"`
	StatusCounts     map[model.Status]int `json:"status_counts"`
}

// NewSummaryResponse converts a derive.Summary to the wire shape.
func NewSummaryResponse(s derive.Summary) SummaryResponse {
	r := SummaryResponse{
		AssetCount:      s.AssetCount,
		TotalCapacityMW: s.TotalCapacityMW,
		ZoneCount:       s.ZoneCount,
		StatusCounts:    s.StatusCounts,
	}
	if s.AveragePriceKnown {
		avg := s.AverageZonePrice
		r.AverageZonePrice = &avg
	}
	return r
}

// SelectionResponse is the current selection. Both fields are omitted when
// the corresponding axis is unselected.
type SelectionResponse struct {
	Asset  *AssetView `json:"asset,omitempty"`
	ZoneID string     `json:"zone_id,omitempty"`
}

// NewSelectionResponse converts a selection snapshot to the wire shape.
func NewSelectionResponse(s selection.State) SelectionResponse {
	r := SelectionResponse{ZoneID: s.ZoneID}
	if s.Asset != nil {
		v := NewAssetView(*s.Asset)
		r.Asset = &v
	}
	return r
}

// SelectionEvent is pushed on the websocket stream after every selection
// mutation so map and list views stay consistent.
type SelectionEvent struct {
	Type      string            `json:"type"` // always "selection"
	Axis      selection.Axis    `json:"axis"`
	Selection SelectionResponse `json:"selection"`
	Timestamp time.Time         `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
