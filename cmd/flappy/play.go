package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/assets"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W - Flap (left click works too)
  P/Esc      - Pause
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

Logs go to the file set by log.file, since the game owns the terminal.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --fps 30 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := cfg.Runtime(width, height, flagSeed)
	if err := tui.CheckTerminal(rt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logOut, closeLog = io.Discard, func() {}
	}
	defer closeLog()
	logger := newLogger(logOut, cfg, "flappy")

	game := flappy.New()
	assets.ResolveAsync(cfg.Sprite.Path, game.Sprite(), logger)

	shotDir := ""
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".flappy", "screenshots")
	}

	if err := tui.Run(game, rt, tui.Options{Logger: logger, ScreenshotDir: shotDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
