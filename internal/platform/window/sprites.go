package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	bodyColor  = color.RGBA{0xff, 0xd8, 0x20, 0xff}
	wingColor  = color.RGBA{0xf0, 0xb0, 0x10, 0xff}
	beakColor  = color.RGBA{0xff, 0x8c, 0x1a, 0xff}
	eyeWhite   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	eyePupil   = color.RGBA{0x10, 0x10, 0x10, 0xff}
	spriteSize = 64
)

// newBirdImage draws the bird facing right on a square image.
// Callers scale it to the actor's box.
func newBirdImage() *ebiten.Image {
	s := float32(spriteSize)
	img := ebiten.NewImage(spriteSize, spriteSize)

	vector.DrawFilledCircle(img, s*0.45, s*0.55, s*0.38, bodyColor, true)
	vector.DrawFilledCircle(img, s*0.30, s*0.62, s*0.16, wingColor, true)
	vector.DrawFilledCircle(img, s*0.62, s*0.40, s*0.13, eyeWhite, true)
	vector.DrawFilledCircle(img, s*0.66, s*0.40, s*0.06, eyePupil, true)

	vector.DrawFilledRect(img, s*0.78, s*0.50, s*0.18, s*0.07, beakColor, true)
	vector.DrawFilledRect(img, s*0.78, s*0.57, s*0.14, s*0.06, wingColor, true)

	return img
}

// drawTree fills a trunk of foliage between y0 and y1. The lip marks the end
// that faces the gap.
func drawTree(dst *ebiten.Image, x, y0, w, y1 float32, lipAtBottom bool) {
	if y1 <= y0 || w <= 0 {
		return
	}
	vector.DrawFilledRect(dst, x, y0, w, y1-y0, foliageColor, false)
	vector.DrawFilledRect(dst, x+w*0.15, y0, w*0.2, y1-y0, foliageLight, false)
	vector.DrawFilledRect(dst, x+w*0.42, y0, w*0.16, y1-y0, barkColor, false)
	vector.StrokeRect(dst, x, y0, w, y1-y0, 2, foliageDark, false)

	const lipH = 18
	lipY := y0
	if lipAtBottom {
		lipY = y1 - lipH
	}
	if y1-y0 >= lipH {
		vector.DrawFilledRect(dst, x-4, lipY, w+8, lipH, foliageDark, false)
		vector.DrawFilledRect(dst, x-2, lipY+2, w+4, lipH-4, foliageLight, false)
	}
}
