package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). Every field has an
// environment override so container deployments can skip the file entirely.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Map    MapConfig    `yaml:"map"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	StaticDir   string   `yaml:"static_dir"`
}

type DataConfig struct {
	// Paths to JSON datasets. Empty or missing paths fall back to the
	// built-in GB fleet and zones.
	AssetsFile string `yaml:"assets_file"`
	ZonesFile  string `yaml:"zones_file"`
}

type MapConfig struct {
	// AccessToken is handed through to the map frontend untouched. The
	// backend never interprets it.
	AccessToken string `yaml:"access_token"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"*"},
			StaticDir:   "./web/dist",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads, overlays environment overrides, and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadOrDefault behaves like Load but tolerates an empty path or a missing
// file, returning defaults (plus environment overrides) instead.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		c := Default()
		c.applyEnv()
		return c, c.Validate()
	}
	c, err := Load(path)
	if err != nil && os.IsNotExist(err) {
		c = Default()
		c.applyEnv()
		return c, c.Validate()
	}
	return c, err
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ATLAS_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ATLAS_STATIC_DIR"); v != "" {
		c.Server.StaticDir = v
	}
	if v := os.Getenv("ATLAS_ASSETS_FILE"); v != "" {
		c.Data.AssetsFile = v
	}
	if v := os.Getenv("ATLAS_ZONES_FILE"); v != "" {
		c.Data.ZonesFile = v
	}
	if v := os.Getenv("ATLAS_MAP_TOKEN"); v != "" {
		c.Map.AccessToken = v
	}
	if v := os.Getenv("ATLAS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q not recognized", c.Log.Level)
	}
	return nil
}
