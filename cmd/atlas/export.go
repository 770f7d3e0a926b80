package main

import (
	"battery-atlas/internal/data"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the asset registry to CSV",
		RunE: func(*cobra.Command, []string) error {
			_, assets, _, err := loadAll()
			if err != nil {
				return err
			}
			if err := data.WriteAssetsCSV(out, assets.List()); err != nil {
				return err
			}
			logrus.Infof("wrote %d assets to %s", assets.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "results/assets.csv", "output CSV path")
	return cmd
}
