package render

import (
	"image"
	"image/color"
)

// The render layer produces a flat draw list each frame. Ops are plain
// data; the rasterizer (or any other presentation backend) interprets
// them. All geometry is in canvas pixels.

// Op is one draw command.
type Op interface{ isOp() }

// FillRect fills an axis-aligned rectangle.
type FillRect struct {
	X, Y, W, H float64
	Color      color.NRGBA
}

// StrokeRect outlines a rectangle with strips of the given width drawn
// outside its bounds.
type StrokeRect struct {
	X, Y, W, H float64
	Width      float64
	Color      color.NRGBA
}

// FillRoundedRect fills a rectangle with rounded corners.
type FillRoundedRect struct {
	X, Y, W, H float64
	Radius     float64
	Color      color.NRGBA
}

// Line draws an axis-aligned line segment of the given stroke width.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          color.NRGBA
}

// Blit places src scaled by an integer factor with its top-left corner
// at (X, Y).
type Blit struct {
	Src   *image.RGBA
	X, Y  float64
	Scale int
}

// Text draws a single line of status text with its top-left corner at
// (X, Y).
type Text struct {
	X, Y  float64
	Text  string
	Color color.NRGBA
}

func (FillRect) isOp()        {}
func (StrokeRect) isOp()      {}
func (FillRoundedRect) isOp() {}
func (Line) isOp()            {}
func (Blit) isOp()            {}
func (Text) isOp()            {}
