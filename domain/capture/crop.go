package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// Crop extracts the region from the frame and PNG-encodes it. The
// origin clamps into the frame and the size to the remaining extent,
// with a one-pixel floor, so a slightly out-of-range selection still
// exports the pixels that exist.
func (f Frame) Crop(r Region) ([]byte, error) {
	if f.Image == nil {
		return nil, fmt.Errorf("crop: no frame image")
	}

	x := clampInt(r.X, 0, f.Width-1)
	y := clampInt(r.Y, 0, f.Height-1)
	w := r.Width
	if w > f.Width-x {
		w = f.Width - x
	}
	if w < 1 {
		w = 1
	}
	h := r.Height
	if h > f.Height-y {
		h = f.Height - y
	}
	if h < 1 {
		h = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), f.Image, image.Pt(x, y), draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
