// Package selection tracks which asset and which zone the user currently
// has highlighted. The two axes are independent: picking an asset never
// touches the zone selection and vice versa.
package selection

import (
	"sync"

	"battery-atlas/internal/model"
	"battery-atlas/internal/registry"
)

// Axis identifies which half of the selection a change touched.
type Axis string

const (
	AxisAsset Axis = "asset"
	AxisZone  Axis = "zone"
)

// State is a snapshot of the current selection. Asset is nil and ZoneID is
// empty when nothing is selected on that axis.
type State struct {
	Asset  *model.BatteryAsset `json:"asset,omitempty"`
	ZoneID string              `json:"zone_id,omitempty"`
}

// Listener is notified after every selection mutation with the axis that
// changed and the resulting state. Called synchronously under no lock.
type Listener func(axis Axis, s State)

// Controller is the single source of truth for selection state. The
// interaction model is one user clicking one view at a time, but gin serves
// handlers concurrently, so mutations are serialized with a mutex.
type Controller struct {
	assets *registry.AssetRegistry
	zones  *registry.ZoneRegistry

	mu       sync.RWMutex
	asset    *model.BatteryAsset
	zoneID   string
	listener Listener
}

// NewController starts with both axes unselected.
func NewController(assets *registry.AssetRegistry, zones *registry.ZoneRegistry) *Controller {
	return &Controller{assets: assets, zones: zones}
}

// OnChange registers the change listener. Intended to be called once during
// wiring, before the controller is shared.
func (c *Controller) OnChange(l Listener) {
	c.mu.Lock()
	c.listener = l
	c.mu.Unlock()
}

// SelectAsset replaces the selected asset wholesale. nil clears the axis.
// The zone axis is untouched.
func (c *Controller) SelectAsset(a *model.BatteryAsset) {
	c.mu.Lock()
	if a == nil {
		c.asset = nil
	} else {
		cp := *a
		c.asset = &cp
	}
	snap, l := c.snapshotLocked()
	c.mu.Unlock()
	if l != nil {
		l(AxisAsset, snap)
	}
}

// SelectAssetID resolves id against the asset registry and selects the
// match. Unknown or dangling IDs degrade to "no selection" on the asset
// axis; they are never an error.
func (c *Controller) SelectAssetID(id string) {
	if id == "" {
		c.SelectAsset(nil)
		return
	}
	a, ok := c.assets.Find(id)
	if !ok {
		c.SelectAsset(nil)
		return
	}
	c.SelectAsset(&a)
}

// SelectZone selects a zone by identifier. Unknown IDs clear the axis and
// the empty string clears it explicitly. Re-selecting the current zone is
// a no-op and does not notify.
func (c *Controller) SelectZone(zoneID string) {
	if zoneID != "" {
		if _, ok := c.zones.Find(zoneID); !ok {
			zoneID = ""
		}
	}
	c.mu.Lock()
	if c.zoneID == zoneID {
		c.mu.Unlock()
		return
	}
	c.zoneID = zoneID
	snap, l := c.snapshotLocked()
	c.mu.Unlock()
	if l != nil {
		l(AxisZone, snap)
	}
}

// Clear resets both axes to unselected.
func (c *Controller) Clear() {
	c.SelectAsset(nil)
	c.SelectZone("")
}

// Current returns the selection snapshot. The returned asset is a copy;
// callers cannot mutate controller state through it.
func (c *Controller) Current() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snap, _ := c.snapshotLocked()
	return snap
}

func (c *Controller) snapshotLocked() (State, Listener) {
	s := State{ZoneID: c.zoneID}
	if c.asset != nil {
		cp := *c.asset
		s.Asset = &cp
	}
	return s, c.listener
}
