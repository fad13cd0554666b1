// Package config loads srcforge configuration.
//
// Configuration comes from three places, later ones winning:
//
//  1. A TOML config file (srcforge.toml in the working directory, or
//     ~/.config/srcforge/config.toml)
//  2. The SRCFORGE_ROOT environment variable
//  3. Command-line flags (applied by the CLI layer)
//
// The package root is always an explicit value threaded into the registry;
// nothing in the library falls back to an ambient default path.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/srcforge/srcforge/pkg/errors"
)

// EnvRoot is the environment variable overriding the package root.
const EnvRoot = "SRCFORGE_ROOT"

// configFileName is the per-project config file looked up in the working
// directory.
const configFileName = "srcforge.toml"

// Config is the srcforge configuration.
type Config struct {
	// Root is the package root directory: the directory whose
	// subdirectories are the package metadata directories.
	Root string `toml:"root"`

	Server Server `toml:"server"`
}

// Server configures the metadata HTTP service.
type Server struct {
	// Addr is the listen address for `srcforge serve`.
	Addr string `toml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{Addr: "127.0.0.1:8642"},
	}
}

// Load reads the configuration from path.
//
// An empty path searches the default locations (working directory, then the
// user config directory); if no file exists, the defaults are returned. An
// explicit path that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
		if path == "" {
			cfg.applyEnv()
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && explicit {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if root := os.Getenv(EnvRoot); root != "" {
		c.Root = root
	}
}

// findConfigFile returns the first default config location that exists.
func findConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, "srcforge", "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
