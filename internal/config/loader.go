// Package config loads optional marker-table overrides for the sweeper.
// By default no file is read at all; overrides exist so a deployment with
// a renamed profile directory or server entry point can retarget the sweep
// without a rebuild.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"browsersweep/internal/sweep"
)

// Config holds marker-table overrides. Empty fields keep the built-in
// defaults.
type Config struct {
	BrowserNames   []string `json:"browser_names" yaml:"browser_names" toml:"browser_names"`
	ProfileMarkers []string `json:"profile_markers" yaml:"profile_markers" toml:"profile_markers"`
	ServerNames    []string `json:"server_names" yaml:"server_names" toml:"server_names"`
	ServerMarkers  []string `json:"server_markers" yaml:"server_markers" toml:"server_markers"`
}

// Load reads a marker-override file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// Markers merges the overrides onto the built-in defaults.
func (c Config) Markers() sweep.Markers {
	m := sweep.DefaultMarkers()
	if len(c.BrowserNames) > 0 {
		m.BrowserNames = c.BrowserNames
	}
	if len(c.ProfileMarkers) > 0 {
		m.ProfileMarks = c.ProfileMarkers
	}
	if len(c.ServerNames) > 0 {
		m.ServerNames = c.ServerNames
	}
	if len(c.ServerMarkers) > 0 {
		m.ServerMarks = c.ServerMarkers
	}
	return m
}
