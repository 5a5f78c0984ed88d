// Package config loads the bbox YAML configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the home directory when no path is given
const DefaultFileName = ".bbox.yaml"

// Config holds user settings shared by all commands
type Config struct {
	// Tolerance for the strict overlap test
	Tolerance float64 `yaml:"tolerance"`
	// Precision is the number of decimals printed in reports
	Precision int `yaml:"precision"`
	// Unit is appended to printed lengths
	Unit string `yaml:"unit"`
	// Debounce delays re-analysis in watch mode
	Debounce time.Duration `yaml:"debounce"`
	LogLevel string        `yaml:"log_level"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Tolerance: 0,
		Precision: 6,
		Unit:      "units",
		Debounce:  200 * time.Millisecond,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path means
// $HOME/.bbox.yaml, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, keeping fields the document does not set
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrap(err, "invalid yaml")
	}
	if cfg.Precision < 0 {
		return errors.Errorf("precision must not be negative, got %d", cfg.Precision)
	}
	if cfg.Debounce < 0 {
		return errors.Errorf("debounce must not be negative, got %s", cfg.Debounce)
	}
	return nil
}
