// Package config loads the optional videocut.toml configuration file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tools points at the external media binaries.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Output controls destination defaults.
type Output struct {
	DefaultName string `toml:"default_name"`
	Overwrite   bool   `toml:"overwrite"`
}

// Workspace controls where per-job temp directories are created.
type Workspace struct {
	Root     string `toml:"root"`
	KeepTemp bool   `toml:"keep_temp"`
}

type Config struct {
	Tools     Tools     `toml:"tools"`
	Output    Output    `toml:"output"`
	Workspace Workspace `toml:"workspace"`
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error: defaults apply. An empty path loads the
// default location under the user config dir.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location, or "" when the user
// config dir cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "videocut", "config.toml")
}

// Sample returns the annotated sample configuration.
func Sample() string { return sampleConfig }
