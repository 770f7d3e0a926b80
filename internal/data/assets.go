package data

import (
	"encoding/json"
	"os"
	"path/filepath"

	"battery-atlas/internal/model"

	"github.com/pkg/errors"
)

// AssetFile is the on-disk shape of an asset dataset.
type AssetFile struct {
	UpdatedAt string               `json:"updated_at"` // ISO 8601 timestamp
	Assets    []model.BatteryAsset `json:"assets"`
}

// LoadAssets loads battery assets from a JSON file.
func LoadAssets(filePath string) (*AssetFile, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "read assets file")
	}

	var f AssetFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrapf(err, "parse assets file %s", filePath)
	}
	return &f, nil
}

// SaveAssets writes an asset dataset to a JSON file, creating parent
// directories as needed.
func SaveAssets(f *AssetFile, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return errors.Wrap(err, "create assets directory")
	}

	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal assets")
	}

	if err := os.WriteFile(filePath, raw, 0644); err != nil {
		return errors.Wrap(err, "write assets file")
	}
	return nil
}

// LoadAssetsOrDefault loads assets from filePath, falling back to the
// built-in dataset when the path is empty or the file does not exist.
func LoadAssetsOrDefault(filePath string) ([]model.BatteryAsset, error) {
	if filePath == "" {
		return DefaultAssets(), nil
	}
	f, err := LoadAssets(filePath)
	if err != nil {
		if os.IsNotExist(errors.Cause(err)) {
			return DefaultAssets(), nil
		}
		return nil, err
	}
	return f.Assets, nil
}
