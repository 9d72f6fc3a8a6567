// Package config provides the optional user configuration loader for evalrs.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const envVar = "EVALRS_CONFIG"

// Config holds user-level settings.
type Config struct {
	// Cargo is the build toolchain binary to invoke.
	Cargo string `yaml:"cargo"`

	// CacheDir overrides the default cache location under the system temp
	// root. It must be on the same filesystem as the temp root, since build
	// outputs are relocated by rename.
	CacheDir string `yaml:"cacheDir"`

	// Quiet makes --quiet the default.
	Quiet bool `yaml:"quiet"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Cargo: "cargo"}
}

// Path returns the config file location: $EVALRS_CONFIG if set, otherwise
// evalrs/config.yaml under the user configuration directory. Empty when no
// user configuration directory can be determined.
func Path() string {
	if p := os.Getenv(envVar); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "evalrs", "config.yaml")
}

// Load reads the configuration file at path. A missing file or an empty
// path yields the defaults; a present but unreadable or malformed file is an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}
	if cfg.Cargo == "" {
		cfg.Cargo = "cargo"
	}
	return cfg, nil
}
