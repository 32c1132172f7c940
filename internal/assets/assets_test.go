package assets

import (
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestLoadEmbedded(t *testing.T) {
	img, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Errorf("embedded sprite is %dx%d, expected 200x160", b.Dx(), b.Dy())
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actor.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 50, 25))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("loaded sprite is %dx%d, expected 50x25", b.Dx(), b.Dy())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(garbage); err == nil {
		t.Error("Load() of a non-image should fail")
	}
}

func TestResolveAsync(t *testing.T) {
	s := flappy.NewSprite()
	<-ResolveAsync("", s, quietLogger())

	if !s.Resolved() {
		t.Fatal("sprite should be resolved after loading the embedded image")
	}
	if w, h := s.Size(); math.Abs(w-24) > 1e-9 || math.Abs(h-19.2) > 1e-9 {
		t.Errorf("sprite size = %vx%v, expected 24x19.2", w, h)
	}
}

func TestResolveAsyncFailureKeepsPlaceholder(t *testing.T) {
	s := flappy.NewSprite()
	<-ResolveAsync(filepath.Join(t.TempDir(), "missing.png"), s, quietLogger())

	if s.Resolved() {
		t.Error("sprite should stay unresolved when loading fails")
	}
	if w, h := s.Size(); w != flappy.PlaceholderWidth || h != flappy.PlaceholderHeight {
		t.Errorf("size = %vx%v, expected placeholder", w, h)
	}
}
