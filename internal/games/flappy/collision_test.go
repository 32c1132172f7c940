package flappy

import (
	"image"
	"testing"
)

func TestCheckCollision(t *testing.T) {
	const fieldH = 600

	tests := []struct {
		name     string
		x, y     float64
		obstacle Obstacle
		expected bool
	}{
		{
			name:     "center inside top obstacle",
			x:        120,
			y:        50,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: true,
		},
		{
			name:     "center inside bottom obstacle",
			x:        120,
			y:        550,
			obstacle: Obstacle{X: 100, Height: 200, Role: Bottom},
			expected: true,
		},
		{
			name:     "inside the gap",
			x:        120,
			y:        300,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: false,
		},
		{
			name:     "just under top obstacle within radius",
			x:        120,
			y:        209,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: true,
		},
		{
			name:     "exactly one radius away",
			x:        120,
			y:        210,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: false,
		},
		{
			name:     "left of obstacle within radius",
			x:        95,
			y:        100,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: true,
		},
		{
			name:     "far left of obstacle",
			x:        0,
			y:        100,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: false,
		},
		{
			name:     "corner outside radius",
			x:        92,
			y:        208,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: false,
		},
		{
			name:     "corner inside radius",
			x:        95,
			y:        205,
			obstacle: Obstacle{X: 100, Height: 200, Role: Top},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewActor(tc.x, tc.y, nil)
			o := tc.obstacle
			if got := CheckCollision(a, &o, fieldH); got != tc.expected {
				t.Errorf("CheckCollision() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollisionRadiusIgnoresHeight(t *testing.T) {
	// 500x100 image scales to 60x12: radius 30 although the actor is only 12 tall.
	s := NewSprite()
	s.Resolve(image.NewRGBA(image.Rect(0, 0, 500, 100)))
	a := NewActor(120, 300, s)

	// Bottom obstacle starting 25 below the center.
	o := Obstacle{X: 100, Height: 275, Role: Bottom}
	if !CheckCollision(a, &o, 600) {
		t.Error("collision should use half the width as radius regardless of height")
	}
}

func TestFirstCollision(t *testing.T) {
	a := NewActor(120, 300, nil)
	obstacles := []Obstacle{
		{X: 400, Height: 100, Role: Top},
		{X: 100, Height: 200, Role: Top},
		{X: 100, Height: 310, Role: Bottom},
	}

	if got := firstCollision(a, obstacles, 600); got != 2 {
		t.Errorf("firstCollision() = %d, expected 2", got)
	}
	if got := firstCollision(a, obstacles[:2], 600); got != -1 {
		t.Errorf("firstCollision() = %d, expected -1", got)
	}
}
