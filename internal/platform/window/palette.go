package window

import (
	"image/color"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// palette maps core.Color to the window's RGBA values.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:           {0xd0, 0x30, 0x30, 0xff},
	core.ColorGreen:         {0x2e, 0x8b, 0x3a, 0xff},
	core.ColorYellow:        {0xf5, 0xd0, 0x2a, 0xff},
	core.ColorBlue:          {0x2d, 0x5b, 0xc8, 0xff},
	core.ColorMagenta:       {0xb0, 0x3a, 0xb8, 0xff},
	core.ColorCyan:          {0x2a, 0xa8, 0xb8, 0xff},
	core.ColorWhite:         {0xee, 0xee, 0xee, 0xff},
	core.ColorBrightRed:     {0xff, 0x40, 0x40, 0xff},
	core.ColorBrightGreen:   {0x5a, 0xd8, 0x5a, 0xff},
	core.ColorBrightYellow:  {0xff, 0xee, 0x55, 0xff},
	core.ColorBrightBlue:    {0x60, 0x90, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x70, 0xff, 0xff},
	core.ColorBrightCyan:    {0x70, 0xf0, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8c, 0x1a, 0xff},
	core.ColorGray:          {0x90, 0x90, 0x90, 0xff},
}

// Scene colors that have no core.Color equivalent.
var (
	skyColor     = color.RGBA{0x70, 0xc5, 0xce, 0xff}
	shadeColor   = color.RGBA{0x00, 0x00, 0x00, 0x99}
	foliageColor = color.RGBA{0x2e, 0x8b, 0x3a, 0xff}
	foliageDark  = color.RGBA{0x1d, 0x5e, 0x26, 0xff}
	foliageLight = color.RGBA{0x4c, 0xb0, 0x50, 0xff}
	barkColor    = color.RGBA{0x6b, 0x43, 0x22, 0xff}
	buttonText   = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}
