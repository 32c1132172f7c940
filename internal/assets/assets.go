// Package assets loads the actor sprite, either from disk or from the copy
// embedded in the binary.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

//go:embed bird.png
var defaultSprite []byte

// Load decodes the sprite image at path. An empty path selects the embedded
// default sprite. A leading ~ is expanded to the home directory.
func Load(path string) (image.Image, error) {
	if path == "" {
		img, _, err := image.Decode(bytes.NewReader(defaultSprite))
		if err != nil {
			return nil, fmt.Errorf("assets: decode embedded sprite: %w", err)
		}
		return img, nil
	}

	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode sprite %s: %w", path, err)
	}
	return img, nil
}

// ResolveAsync loads the sprite at path in the background and resolves s
// with it. On failure s stays unresolved, so the actor keeps its placeholder
// size, and a warning is logged. The returned channel is closed when loading
// has finished either way.
func ResolveAsync(path string, s *flappy.Sprite, logger *log.Logger) <-chan struct{} {
	if logger == nil {
		logger = log.Default()
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		img, err := Load(path)
		if err != nil {
			logger.Warn("sprite unavailable, keeping placeholder size", "path", path, "error", err)
			return
		}
		if s.Resolve(img) {
			w, h := s.Size()
			logger.Debug("sprite resolved", "path", path, "width", w, "height", h)
		}
	}()
	return done
}
