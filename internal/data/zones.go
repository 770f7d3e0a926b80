package data

import (
	"encoding/json"
	"os"
	"path/filepath"

	"battery-atlas/internal/model"

	"github.com/pkg/errors"
)

// ZoneFile is the on-disk shape of a pricing-zone dataset.
type ZoneFile struct {
	UpdatedAt string       `json:"updated_at"` // ISO 8601 timestamp
	Zones     []model.Zone `json:"zones"`
}

// LoadZones loads pricing zones from a JSON file.
func LoadZones(filePath string) (*ZoneFile, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read zones file")
	}

	var f ZoneFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parse zones file %s", filePath)
	}
	return &f, nil
}

// SaveZones writes a zone dataset to a JSON file, creating parent
// directories as needed.
func SaveZones(f *ZoneFile, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return errors.Wrap(err, "create zones directory")
	}

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal zones")
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return errors.Wrap(err, "write zones file")
	}
	return nil
}

// LoadZonesOrDefault loads zones from filePath, falling back to the
// built-in dataset when the path is empty or the file does not exist.
func LoadZonesOrDefault(filePath string) ([]model.Zone, error) {
	if filePath == "" {
		return DefaultZones(), nil
	}
	f, err := LoadZones(filePath)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return DefaultZones(), nil
		}
		return nil, err
	}
	return f.Zones, nil
}
