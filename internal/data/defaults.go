package data

import "battery-atlas/internal/model"

// DefaultAssets returns the built-in GB battery fleet used when no asset
// file is configured. London Gateway and Southampton happen to share the
// South East zone price (85.5 £/MWh); that is coincidental reference data,
// not a join — assets are never linked to zones by region or price.
func DefaultAssets() []model.BatteryAsset {
	return []model.BatteryAsset{
		{
			ID:         "pillswood",
			Name:       "Pillswood",
			Region:     "Yorkshire",
			VoltageKV:  275,
			CapacityMW: 98,
			Lat:        53.782,
			Lng:        -0.426,
			Status:     model.StatusOperational,
			ZonePrice:  79.2,
		},
		{
			ID:         "london-gateway",
			Name:       "London Gateway",
			Region:     "South East",
			VoltageKV:  400,
			CapacityMW: 320,
			Lat:        51.508,
			Lng:        0.489,
			Status:     model.StatusConstruction,
			ZonePrice:  85.5,
		},
		{
			ID:         "southampton",
			Name:       "Southampton",
			Region:     "South East",
			VoltageKV:  132,
			CapacityMW: 50,
			Lat:        50.909,
			Lng:        -1.404,
			Status:     model.StatusPlanned,
			ZonePrice:  85.5,
		},
		{
			ID:         "minety",
			Name:       "Minety",
			Region:     "South West",
			VoltageKV:  132,
			CapacityMW: 100,
			Lat:        51.602,
			Lng:        -1.996,
			Status:     model.StatusOperational,
			ZonePrice:  82.7,
		},
		{
			ID:         "capenhurst",
			Name:       "Capenhurst",
			Region:     "North West",
			VoltageKV:  275,
			CapacityMW: 100,
			Lat:        53.263,
			Lng:        -2.951,
			Status:     model.StatusOperational,
			ZonePrice:  78.3,
		},
		{
			ID:         "blackhillock",
			Name:       "Blackhillock",
			Region:     "Scotland",
			VoltageKV:  400,
			CapacityMW: 200,
			Lat:        57.558,
			Lng:        -2.986,
			Status:     model.StatusConstruction,
			ZonePrice:  71.2,
		},
		{
			ID:         "cleve-hill",
			Name:       "Cleve Hill",
			Region:     "South East",
			VoltageKV:  400,
			CapacityMW: 150,
			Lat:        51.337,
			Lng:        0.894,
			Status:     model.StatusPlanned,
			ZonePrice:  85.5,
		},
	}
}

// DefaultZones returns the built-in GB pricing zones. The Highlands zone
// carries no polygon: it is priced but not drawn.
func DefaultZones() []model.Zone {
	return []model.Zone{
		{
			ID:    "south-east",
			Name:  "South East",
			Color: "#e8590c",
			Price: 85.5,
			Bounds: []model.LatLng{
				{Lat: 51.80, Lng: -1.20},
				{Lat: 51.80, Lng: 1.40},
				{Lat: 50.70, Lng: 1.40},
				{Lat: 50.70, Lng: -1.20},
			},
		},
		{
			ID:    "north-west",
			Name:  "North West",
			Color: "#1971c2",
			Price: 78.3,
			Bounds: []model.LatLng{
				{Lat: 54.60, Lng: -3.60},
				{Lat: 54.60, Lng: -2.00},
				{Lat: 53.00, Lng: -2.00},
				{Lat: 53.00, Lng: -3.60},
			},
		},
		{
			ID:    "yorkshire",
			Name:  "Yorkshire",
			Color: "#2f9e44",
			Price: 79.2,
			Bounds: []model.LatLng{
				{Lat: 54.50, Lng: -2.00},
				{Lat: 54.50, Lng: 0.20},
				{Lat: 53.30, Lng: 0.20},
				{Lat: 53.30, Lng: -2.00},
			},
		},
		{
			ID:    "highlands",
			Name:  "Highlands",
			Color: "#9c36b5",
			Price: 71.2,
		},
	}
}
