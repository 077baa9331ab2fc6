package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tweety-escape/internal/core"
)

// textScale enlarges the 7x13 bitmap face to something readable at
// window resolution.
const textScale = 2

var _ core.Canvas = (*ImageCanvas)(nil)

// ImageCanvas draws a surface onto an ebiten image, one unit per pixel.
type ImageCanvas struct {
	dst  *ebiten.Image
	w, h float64
	face text.Face
	bird *ebiten.Image
}

// NewImageCanvas creates a canvas for a w×h surface.
// Target must be called before drawing.
func NewImageCanvas(w, h float64) *ImageCanvas {
	return &ImageCanvas{
		w:    w,
		h:    h,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Target points the canvas at the image of the current frame.
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the surface dimensions in surface units.
func (c *ImageCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear paints the sky.
func (c *ImageCanvas) Clear() {
	c.dst.Fill(skyColor)
}

// Shade darkens everything drawn so far.
func (c *ImageCanvas) Shade() {
	vector.DrawFilledRect(c.dst, 0, 0, float32(c.w), float32(c.h), shadeColor, false)
}

func (c *ImageCanvas) Fill(b core.Box, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(col), false)
}

func (c *ImageCanvas) Text(x, y float64, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	text.Draw(c.dst, s, c.face, op)
}

func (c *ImageCanvas) TextCentered(cx, y float64, s string, col core.Color) {
	w, _ := c.measure(s)
	c.Text(cx-w/2, y, s, col)
}

// measure returns the drawn size of s in surface units.
func (c *ImageCanvas) measure(s string) (float64, float64) {
	w, h := text.Measure(s, c.face, 0)
	return w * textScale, h * textScale
}

// Sprite draws an asset into b, rotated by angle radians about its center.
func (c *ImageCanvas) Sprite(sp core.Sprite, b core.Box, angle float64) {
	switch sp {
	case core.SpriteActor, core.SpriteLogo:
		c.drawBird(b, angle)
	case core.SpriteTreeTop:
		drawTree(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.Bottom()), true)
	case core.SpriteTreeBottom:
		drawTree(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.Bottom()), false)
	}
}

func (c *ImageCanvas) drawBird(b core.Box, angle float64) {
	if c.bird == nil {
		c.bird = newBirdImage()
	}
	size := float64(spriteSize)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Scale(b.W/size, b.H/size)
	op.GeoM.Rotate(angle)
	center := b.Center()
	op.GeoM.Translate(center.X, center.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(c.bird, op)
}

// Button fills the box in yellow and centers a black label inside it.
func (c *ImageCanvas) Button(b core.Box, label string) {
	vector.DrawFilledRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(core.ColorYellow), false)

	w, h := c.measure(label)
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(b.X+(b.W-w)/2, b.Y+(b.H-h)/2)
	op.ColorScale.ScaleWithColor(buttonText)
	text.Draw(c.dst, label, c.face, op)
}
