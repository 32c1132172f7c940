package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable window and play with the mouse or keyboard.

Controls:
  Space/Up/W/Click - Flap
  R/Enter/Click    - Restart (after game over)
  Q/Esc            - Quit

Examples:
  flappy window
  flappy window --width 1024 --height 768`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width override (0 = from config)")
	windowCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height override (0 = from config)")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagWidth > 0 {
		cfg.Window.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Window.Height = flagHeight
	}

	logger := newLogger(os.Stderr, cfg, "flappy")

	sprite := flappy.NewSprite()
	assets.ResolveAsync(cfg.Sprite.Path, sprite, logger)

	err := window.Run(sprite, window.Options{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Title:    cfg.Window.Title,
		TickRate: cfg.Display.TickRate,
		Seed:     flagSeed,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", err)
		os.Exit(1)
	}
}
