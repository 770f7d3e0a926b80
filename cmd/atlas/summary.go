package main

import (
	"fmt"

	"battery-atlas/internal/derive"
	"battery-atlas/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print dashboard statistics for the configured datasets",
		RunE: func(*cobra.Command, []string) error {
			_, assets, zones, err := loadAll()
			if err != nil {
				return err
			}

			s := derive.Summarize(assets.List(), zones.List())

			fmt.Printf("Assets:          %d\n", s.AssetCount)
			fmt.Printf("Total capacity:  %s MW\n", humanize.CommafWithDigits(s.TotalCapacityMW, 1))
			fmt.Printf("Zones:           %d\n", s.ZoneCount)
			if s.AveragePriceKnown {
				fmt.Printf("Avg zone price:  %.2f £/MWh\n", s.AverageZonePrice)
			} else {
				fmt.Printf("Avg zone price:  N/A\n")
			}

			fmt.Println()
			for _, st := range []model.Status{
				model.StatusOperational, model.StatusConstruction, model.StatusPlanned,
			} {
				fmt.Printf("  %s %d\n", statusLabel(st), s.StatusCounts[st])
			}
			return nil
		},
	}
}

// statusLabel colors a status name with its marker color so the terminal
// matches the map legend.
func statusLabel(s model.Status) string {
	text := fmt.Sprintf("%-13s", string(s))
	switch derive.StatusColor(s) {
	case derive.ColorOperational:
		return color.GreenString(text)
	case derive.ColorConstruction:
		return color.YellowString(text)
	case derive.ColorPlanned:
		return color.BlueString(text)
	default:
		return text
	}
}
