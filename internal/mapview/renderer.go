// Package mapview is the boundary to the map-rendering engine. The engine
// itself (tiles, projection, marker DOM) lives outside this repo; it is
// consumed through the narrow Renderer interface so selection and
// derivation logic stays testable without a real map.
package mapview

import (
	"battery-atlas/internal/derive"
	"battery-atlas/internal/model"
	"battery-atlas/internal/registry"
	"battery-atlas/internal/selection"
)

// Marker is the view-model handed to a Renderer: the asset plus its
// derived visual attributes.
type Marker struct {
	Asset model.BatteryAsset `json:"asset"`
	Size  derive.SizeTier    `json:"size"`
	Color string             `json:"color"`
}

// ClickFunc is invoked by the renderer when a marker is activated,
// carrying the asset ID the marker was built from.
type ClickFunc func(assetID string)

// Renderer is the contract a concrete map engine implements. Render plots
// the full marker set and retains onClick for marker activations; Teardown
// releases whatever the engine allocated.
type Renderer interface {
	Render(markers []Marker, onClick ClickFunc) error
	Teardown()
}

// BuildMarkers derives the marker set for the given assets.
func BuildMarkers(assets []model.BatteryAsset) []Marker {
	markers := make([]Marker, len(assets))
	for i, a := range assets {
		markers[i] = Marker{
			Asset: a,
			Size:  derive.MarkerSize(a.VoltageKV),
			Color: derive.StatusColor(a.Status),
		}
	}
	return markers
}

// Adapter binds a Renderer to the asset registry and the selection
// controller: registry contents flow out as markers, marker clicks flow
// back in as asset selections.
type Adapter struct {
	renderer Renderer
	assets   *registry.AssetRegistry
	sel      *selection.Controller
}

func NewAdapter(r Renderer, assets *registry.AssetRegistry, sel *selection.Controller) *Adapter {
	return &Adapter{renderer: r, assets: assets, sel: sel}
}

// Mount renders the registry snapshot and wires clicks to the selection
// controller.
func (ad *Adapter) Mount() error {
	return ad.renderer.Render(BuildMarkers(ad.assets.List()), func(assetID string) {
		ad.sel.SelectAssetID(assetID)
	})
}

// Unmount tears the renderer down.
func (ad *Adapter) Unmount() {
	ad.renderer.Teardown()
}
