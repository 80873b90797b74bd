package images

import (
	"image"
	"image/draw"
	"math"
)

// MagnifierWindow is the valid portion of an odd×odd source-pixel grid
// around a target point. When the ideal window extends past the image,
// only the in-bounds cells are extracted and OffsetX/OffsetY give their
// position (in cells) inside the ideal grid, so the caller can keep the
// magnifier pinned under the cursor instead of re-centering.
type MagnifierWindow struct {
	Pixels  *image.RGBA
	OffsetX int
	OffsetY int
	CenterX int // source pixel the grid centers on
	CenterY int
}

// ExtractWindow samples the grid×grid source window centered on the
// floor of (tx, ty). The center clamps to the image; grid is forced odd
// with a minimum of 3.
func ExtractWindow(frame *image.RGBA, tx, ty float64, grid int) MagnifierWindow {
	if grid < 3 {
		grid = 3
	}
	if grid%2 == 0 {
		grid++
	}
	b := frame.Bounds()
	cx := clamp(int(math.Floor(tx)), 0, b.Dx()-1)
	cy := clamp(int(math.Floor(ty)), 0, b.Dy()-1)
	half := grid / 2

	idealX0 := cx - half
	idealY0 := cy - half
	x0 := clamp(idealX0, 0, b.Dx())
	y0 := clamp(idealY0, 0, b.Dy())
	x1 := clamp(idealX0+grid, 0, b.Dx())
	y1 := clamp(idealY0+grid, 0, b.Dy())

	roi := image.Rect(b.Min.X+x0, b.Min.Y+y0, b.Min.X+x1, b.Min.Y+y1)
	out := image.NewRGBA(image.Rect(0, 0, roi.Dx(), roi.Dy()))
	draw.Draw(out, out.Bounds(), frame, roi.Min, draw.Src)

	return MagnifierWindow{
		Pixels:  out,
		OffsetX: x0 - idealX0,
		OffsetY: y0 - idealY0,
		CenterX: cx,
		CenterY: cy,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
