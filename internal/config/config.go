// Package config provides YAML-based platform configuration for the game:
// frame rate, terminal cell metrics, sprite, window, SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete platform configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Sprite  SpriteConfig  `yaml:"sprite"`
	Window  WindowConfig  `yaml:"window"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig defines the terminal simulation rate and grid mapping.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// SpriteConfig selects the actor image.
type SpriteConfig struct {
	Path string `yaml:"path"`
}

// WindowConfig defines the initial graphical window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	DBPath      string        `yaml:"db_path"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("%w: display.tick_rate must be positive, got %d", ErrInvalid, c.Display.TickRate)
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("%w: display cell size must be positive, got %dx%d", ErrInvalid, c.Display.CellWidth, c.Display.CellHeight)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout must not be negative", ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses log.level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// Runtime builds the game runtime configuration for a terminal of the given size.
func (c Config) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    screenW,
		ScreenH:    screenH,
		TickRate:   c.Display.TickRate,
		Seed:       seed,
		CellWidth:  c.Display.CellWidth,
		CellHeight: c.Display.CellHeight,
	}
}
