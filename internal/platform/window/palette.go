package window

import (
	"image/color"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Background fill for the playfield.
var skyColor = color.RGBA{R: 0x70, G: 0xc5, B: 0xce, A: 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:          {R: 0xc0, G: 0x30, B: 0x30, A: 0xff},
	core.ColorGreen:        {R: 0x3c, G: 0xa0, B: 0x3c, A: 0xff},
	core.ColorYellow:       {R: 0xd0, G: 0xb0, B: 0x20, A: 0xff},
	core.ColorBlue:         {R: 0x30, G: 0x50, B: 0xc0, A: 0xff},
	core.ColorCyan:         {R: 0x30, G: 0xb0, B: 0xc0, A: 0xff},
	core.ColorWhite:        {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	core.ColorBrightRed:    {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
	core.ColorBrightGreen:  {R: 0x60, G: 0xe0, B: 0x60, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xe0, B: 0x40, A: 0xff},
	core.ColorGray:         {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// rgba returns the window color for c, or white if c is unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
