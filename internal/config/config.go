package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Bridge configures the optional host-integration bridge.
type Bridge struct {
	Enabled   bool `toml:"enabled"`
	Port      int  `toml:"port"`
	Advertise bool `toml:"advertise"`
}

// Config is the application configuration, loaded from a TOML file in the
// user config directory. Every field has a usable default.
type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Bridge Bridge `toml:"bridge"`
}

const (
	DefaultTitle  = "Simple Whiteboard"
	DefaultWidth  = 800
	DefaultHeight = 600

	defaultBridgePort = 8888
)

const defaultConfigTOML = `# SimpleWhiteboard configuration
title = "Simple Whiteboard"
width = 800
height = 600

[bridge]
enabled = false
port = 8888
advertise = false
`

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:  DefaultTitle,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Bridge: Bridge{Port: defaultBridgePort},
	}
}

// Parse decodes TOML data and fills in defaults for missing or unusable
// values. A bad title or size never aborts startup.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return sanitize(cfg), nil
}

func sanitize(cfg Config) Config {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Bridge.Port <= 0 || cfg.Bridge.Port > 65535 {
		cfg.Bridge.Port = defaultBridgePort
	}
	return cfg
}

// configDir returns the directory for SimpleWhiteboard config files,
// using the platform user config dir.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "simplewhiteboard"), nil
}

// configPath returns the full path to the config.toml file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the user config, creating a default file on first run.
// Errors reading or writing the file fall back to defaults.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			_ = os.WriteFile(path, []byte(defaultConfigTOML), 0o644)
		}
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}
