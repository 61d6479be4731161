package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/wmkit/cursorkit/internal/icon"
	"github.com/wmkit/cursorkit/internal/xcursor"
)

// Config selects the cursor theme and the icon applied by default.
type Config struct {
	// Theme names the Xcursor theme; empty falls back to XCURSOR_THEME
	// and then "default".
	Theme string `yaml:"theme"`
	// Size is the nominal cursor size; 0 falls back to XCURSOR_SIZE and
	// then the screen-height heuristic.
	Size int `yaml:"size"`
	// DefaultIcon is the canonical name of the icon the demo applies on
	// startup.
	DefaultIcon string `yaml:"default_icon"`
}

func Default() *Config {
	return &Config{DefaultIcon: "default"}
}

func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "cursorkit", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Size < 0 {
		return nil, fmt.Errorf("config %s: size must not be negative", path)
	}
	return cfg, nil
}

// Database returns the theme selection for cursor resolution.
func (c *Config) Database() xcursor.Database {
	return xcursor.Database{Theme: c.Theme, Size: c.Size}
}

// Icon returns the configured default icon, falling back to the standard
// arrow for unknown names.
func (c *Config) Icon() icon.Cursor {
	if sel, ok := icon.FromName(c.DefaultIcon); ok {
		return sel
	}
	return icon.Default
}
