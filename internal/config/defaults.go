package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:   60,
			CellWidth:  10,
			CellHeight: 20,
		},
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Flappy",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
			DBPath:      "~/.flappy/sessions.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.flappy/flappy.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
