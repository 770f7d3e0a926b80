package data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"battery-atlas/internal/derive"
	"battery-atlas/internal/model"

	"github.com/pkg/errors"
)

// WriteAssetsCSV dumps the asset registry, including derived marker
// attributes, for spreadsheet analysis.
func WriteAssetsCSV(path string, assets []model.BatteryAsset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv file")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"id",
		"name",
		"region",
		"voltage_kv",
		"capacity_mw",
		"lat",
		"lng",
		"status",
		"zone_price",
		"marker_size",
		"marker_color",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, a := range assets {
		row := []string{
			a.ID,
			a.Name,
			a.Region,
			strconv.Itoa(a.VoltageKV),
			fmtFloat(a.CapacityMW),
			fmtFloat(a.Lat),
			fmtFloat(a.Lng),
			string(a.Status),
			fmtFloat(a.ZonePrice),
			string(derive.MarkerSize(a.VoltageKV)),
			derive.StatusColor(a.Status),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
