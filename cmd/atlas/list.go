package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"battery-atlas/internal/derive"

	"github.com/spf13/cobra"
)

func newAssetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List battery assets with their derived marker attributes",
		RunE: func(*cobra.Command, []string) error {
			_, assets, _, err := loadAll()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tREGION\tKV\tMW\tSTATUS\tMARKER\tPRICE")
			for _, a := range assets.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%s\t%s/%s\t%.2f\n",
					a.ID, a.Name, a.Region, a.VoltageKV, a.CapacityMW,
					statusLabel(a.Status),
					derive.MarkerSize(a.VoltageKV), derive.StatusColor(a.Status),
					a.ZonePrice)
			}
			return w.Flush()
		},
	}
}

func newZonesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List pricing zones",
		RunE: func(*cobra.Command, []string) error {
			_, _, zones, err := loadAll()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tCOLOR\tDRAWN")
			for _, z := range zones.List() {
				drawn := "yes"
				if len(z.Bounds) == 0 {
					drawn = "no"
				}
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%s\n", z.ID, z.Name, z.Price, z.Color, drawn)
			}
			return w.Flush()
		},
	}
}
