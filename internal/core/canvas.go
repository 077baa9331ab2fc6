package core

import (
	"math"
	"unicode/utf8"
)

// Sprite identifies a visual asset the platform knows how to draw.
type Sprite int

const (
	SpriteActor Sprite = iota
	SpriteTreeTop
	SpriteTreeBottom
	SpriteLogo
)

// Canvas is an immediate-mode 2D drawing surface addressed in surface units.
// Games draw through it so the same scene renders to a terminal cell grid
// or to a pixel window.
type Canvas interface {
	// Size returns the surface dimensions in surface units.
	Size() (w, h float64)
	Clear()
	// Shade dims everything drawn so far, for overlays.
	Shade()
	Fill(b Box, c Color)
	// Text draws s with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
	// TextCentered draws s horizontally centered on cx.
	TextCentered(cx, y float64, s string, c Color)
	// Sprite draws an asset into b, rotated by angle radians about its center.
	Sprite(sp Sprite, b Box, angle float64)
	// Button draws a clickable rectangle with a centered label.
	Button(b Box, label string)
}

// CellCanvas draws a surface onto a character Screen.
// One column covers unitW surface units and one row covers unitH.
type CellCanvas struct {
	screen *Screen
	w, h   float64
	unitW  float64
	unitH  float64
}

// NewCellCanvas wraps screen as a Canvas for a surface of w×h units.
func NewCellCanvas(screen *Screen, w, h, unitW, unitH float64) *CellCanvas {
	return &CellCanvas{screen: screen, w: w, h: h, unitW: unitW, unitH: unitH}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the surface dimensions in surface units.
func (c *CellCanvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear blanks the screen.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// Shade grays out the scene drawn so far.
func (c *CellCanvas) Shade() {
	c.screen.Recolor(ColorGray)
}

// Fill paints every cell the box touches.
func (c *CellCanvas) Fill(b Box, col Color) {
	c.screen.DrawRect(b.Cells(c.unitW, c.unitH), '█', col)
}

// Text draws s starting at the cell containing (x, y).
func (c *CellCanvas) Text(x, y float64, s string, col Color) {
	c.screen.DrawText(c.col(x), c.row(y), s, col)
}

// TextCentered draws s centered on the column containing cx.
func (c *CellCanvas) TextCentered(cx, y float64, s string, col Color) {
	c.screen.DrawText(c.col(cx)-utf8.RuneCountInString(s)/2, c.row(y), s, col)
}

// Sprite draws a glyph rendition of the asset.
func (c *CellCanvas) Sprite(sp Sprite, b Box, angle float64) {
	r := b.Cells(c.unitW, c.unitH)
	if r.W <= 0 || r.H <= 0 {
		return
	}

	switch sp {
	case SpriteActor:
		c.screen.DrawRect(r, '●', ColorBrightYellow)
		head := '◢'
		if angle < 0 {
			head = '◥'
		}
		c.screen.SetCell(r.Right()-1, r.Y, head, ColorOrange)

	case SpriteTreeTop:
		c.screen.DrawRect(r, '█', ColorGreen)
		for x := r.X; x < r.Right(); x++ {
			c.screen.SetCell(x, r.Bottom()-1, '▄', ColorBrightGreen)
		}

	case SpriteTreeBottom:
		c.screen.DrawRect(r, '█', ColorGreen)
		for x := r.X; x < r.Right(); x++ {
			c.screen.SetCell(x, r.Y, '▀', ColorBrightGreen)
		}

	case SpriteLogo:
		c.screen.DrawBox(r, ColorBrightYellow)
		inner := NewRect(r.X+r.W/3, r.Y+r.H/3, Max(r.W/3, 1), Max(r.H/3, 1))
		c.screen.DrawRect(inner, '●', ColorBrightYellow)
		c.screen.SetCell(inner.Right(), inner.Y, '◢', ColorOrange)
	}
}

// Button outlines the box in yellow and centers the label inside it.
// Boxes too small for an outline are filled instead.
func (c *CellCanvas) Button(b Box, label string) {
	r := b.Cells(c.unitW, c.unitH)
	if r.W < 2 || r.H < 2 {
		c.screen.DrawRect(r, '█', ColorYellow)
	} else {
		c.screen.DrawRect(r, ' ', ColorDefault)
		c.screen.DrawBox(r, ColorYellow)
	}
	mid := r.Y + r.H/2
	c.screen.DrawText(r.X+(r.W-utf8.RuneCountInString(label))/2, mid, label, ColorBrightWhite)
}

func (c *CellCanvas) col(x float64) int {
	return int(math.Floor(x / c.unitW))
}

func (c *CellCanvas) row(y float64) int {
	return int(math.Floor(y / c.unitH))
}

// ToSurface converts a cell coordinate to the surface point at the cell's center.
func (c *CellCanvas) ToSurface(col, row int) Point {
	return Point{
		X: (float64(col) + 0.5) * c.unitW,
		Y: (float64(row) + 0.5) * c.unitH,
	}
}
