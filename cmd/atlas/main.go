package main

import (
	"fmt"
	"os"

	"battery-atlas/internal/config"
	"battery-atlas/internal/data"
	"battery-atlas/internal/registry"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   = "info"
	configPath = ""
	assetsFile = ""
	zonesFile  = ""
)

func main() {
	root := &cobra.Command{
		Use:           "atlas",
		Short:         "Battery storage dashboard backend and tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %v", err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&logLevel, "log-level", "l", logLevel, "log level (debug, info, warn, error)")
	pf.StringVarP(&configPath, "config", "c", configPath, "path to YAML config")
	pf.StringVar(&assetsFile, "assets", assetsFile, "path to assets JSON (overrides config)")
	pf.StringVar(&zonesFile, "zones", zonesFile, "path to zones JSON (overrides config)")

	root.AddCommand(
		newServeCommand(),
		newSummaryCommand(),
		newAssetsCommand(),
		newZonesCommand(),
		newExportCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAll resolves config and builds both registries, honoring the
// --assets/--zones overrides.
func loadAll() (*config.Config, *registry.AssetRegistry, *registry.ZoneRegistry, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if assetsFile != "" {
		cfg.Data.AssetsFile = assetsFile
	}
	if zonesFile != "" {
		cfg.Data.ZonesFile = zonesFile
	}

	assetRecords, err := data.LoadAssetsOrDefault(cfg.Data.AssetsFile)
	if err != nil {
		return nil, nil, nil, err
	}
	zoneRecords, err := data.LoadZonesOrDefault(cfg.Data.ZonesFile)
	if err != nil {
		return nil, nil, nil, err
	}

	assets, err := registry.NewAssetRegistry(assetRecords)
	if err != nil {
		return nil, nil, nil, err
	}
	zones, err := registry.NewZoneRegistry(zoneRecords)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, assets, zones, nil
}
