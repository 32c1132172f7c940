package flappy

import (
	"image"
	"sync/atomic"
)

// SpriteScale is applied to the source image's pixel size to get the actor size.
const SpriteScale = 0.12

// Placeholder actor size used until the sprite resolves, or forever if it never does.
const (
	PlaceholderWidth  = 20.0
	PlaceholderHeight = 20.0
)

type spriteState struct {
	img  image.Image
	w, h float64
}

// Sprite is the actor's image. It starts unresolved and is resolved at most
// once, typically from a loader goroutine, while the world keeps ticking.
// Reads never block.
type Sprite struct {
	state atomic.Pointer[spriteState]
}

// NewSprite returns an unresolved sprite.
func NewSprite() *Sprite {
	return &Sprite{}
}

// Resolve records the loaded image. Only the first call has an effect; it
// reports whether this call was the one that resolved the sprite.
func (s *Sprite) Resolve(img image.Image) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	st := &spriteState{
		img: img,
		w:   float64(b.Dx()) * SpriteScale,
		h:   float64(b.Dy()) * SpriteScale,
	}
	return s.state.CompareAndSwap(nil, st)
}

// Resolved reports whether an image has been loaded.
func (s *Sprite) Resolved() bool {
	return s != nil && s.state.Load() != nil
}

// Image returns the loaded image, or nil while unresolved.
func (s *Sprite) Image() image.Image {
	if s == nil {
		return nil
	}
	if st := s.state.Load(); st != nil {
		return st.img
	}
	return nil
}

// Size returns the scaled sprite size, or the placeholder size while unresolved.
func (s *Sprite) Size() (w, h float64) {
	if s != nil {
		if st := s.state.Load(); st != nil {
			return st.w, st.h
		}
	}
	return PlaceholderWidth, PlaceholderHeight
}
