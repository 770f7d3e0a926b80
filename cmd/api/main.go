package main

import (
	"fmt"
	"os"

	"battery-atlas/internal/api"
	"battery-atlas/internal/config"
	"battery-atlas/internal/data"
	"battery-atlas/internal/registry"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadOrDefault(os.Getenv("ATLAS_CONFIG"))
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(lvl)
	}

	assets, err := loadRegistries(cfg)
	if err != nil {
		logrus.Fatalf("load reference data: %v", err)
	}

	srv, err := api.New(cfg, assets.assets, assets.zones, nil)
	if err != nil {
		logrus.Fatalf("build server: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.Infof("starting atlas API on %s (%d assets, %d zones)",
		addr, assets.assets.Len(), assets.zones.Len())
	if err := srv.Router.Run(addr); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}

type registries struct {
	assets *registry.AssetRegistry
	zones  *registry.ZoneRegistry
}

func loadRegistries(cfg *config.Config) (*registries, error) {
	assetRecords, err := data.LoadAssetsOrDefault(cfg.Data.AssetsFile)
	if err != nil {
		return nil, err
	}
	zoneRecords, err := data.LoadZonesOrDefault(cfg.Data.ZonesFile)
	if err != nil {
		return nil, err
	}

	assets, err := registry.NewAssetRegistry(assetRecords)
	if err != nil {
		return nil, err
	}
	zones, err := registry.NewZoneRegistry(zoneRecords)
	if err != nil {
		return nil, err
	}
	return &registries{assets: assets, zones: zones}, nil
}
