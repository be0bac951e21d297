// Package config loads the optional project configuration file. Both
// TOML and YAML are accepted; the format is detected from the file
// extension. A missing file just yields the defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// candidates are the filenames probed by Discover, in order.
var candidates = []string{"skein.toml", "skein.yaml", "skein.yml"}

// Diagnostics configures the human-facing diagnostic formatter.
type Diagnostics struct {
	Color   bool `toml:"color" yaml:"color"`
	Context int  `toml:"context" yaml:"context"`
}

// Logging configures the driver's logging output.
type Logging struct {
	Level string `toml:"level" yaml:"level"` // debug | info | warn | error
	File  string `toml:"file" yaml:"file"`   // optional JSON log file
}

// Config is the full project configuration.
type Config struct {
	Diagnostics Diagnostics `toml:"diagnostics" yaml:"diagnostics"`
	Logging     Logging     `toml:"logging" yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Diagnostics: Diagnostics{Color: true, Context: 2},
		Logging:     Logging{Level: "info"},
	}
}

// Load reads the configuration file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	return cfg, nil
}

// Discover looks for a config file in dir, returning its path if one of
// the well-known names exists.
func Discover(dir string) (string, bool) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
