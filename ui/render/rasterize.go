package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"snipsel/ui/images"
)

// Rasterize composites the draw list over the captured frame and
// returns the finished overlay image. The source frame is not modified.
func Rasterize(frame *image.RGBA, ops []Op) *image.RGBA {
	b := frame.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)

	for _, op := range ops {
		switch o := op.(type) {
		case FillRect:
			fillRect(out, o.X, o.Y, o.W, o.H, o.Color)
		case StrokeRect:
			strokeRect(out, o)
		case FillRoundedRect:
			fillRoundedRect(out, o)
		case Line:
			drawLine(out, o)
		case Blit:
			blit(out, o)
		case Text:
			drawText(out, o)
		}
	}
	return out
}

func fillRect(dst *image.RGBA, x, y, w, h float64, c color.NRGBA) {
	r := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect draws four strips outside the rectangle bounds, matching
// the geometry hit testing assumes: the stroked area never covers the
// rectangle's interior.
func strokeRect(dst *image.RGBA, o StrokeRect) {
	w := o.Width
	fillRect(dst, o.X-w, o.Y-w, o.W+2*w, w, o.Color)
	fillRect(dst, o.X-w, o.Y+o.H, o.W+2*w, w, o.Color)
	fillRect(dst, o.X-w, o.Y, w, o.H, o.Color)
	fillRect(dst, o.X+o.W, o.Y, w, o.H, o.Color)
}

func fillRoundedRect(dst *image.RGBA, o FillRoundedRect) {
	x0 := int(math.Round(o.X))
	y0 := int(math.Round(o.Y))
	x1 := int(math.Round(o.X + o.W))
	y1 := int(math.Round(o.Y + o.H))
	r := o.Radius

	bounds := image.Rect(x0, y0, x1, y1).Intersect(dst.Bounds())
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			fx := float64(px) + 0.5
			fy := float64(py) + 0.5
			// Distance from the pixel center to the nearest corner
			// circle center; interior pixels pass trivially.
			cx := clampFloat(fx, o.X+r, o.X+o.W-r)
			cy := clampFloat(fy, o.Y+r, o.Y+o.H-r)
			ddx := fx - cx
			ddy := fy - cy
			if ddx*ddx+ddy*ddy > r*r {
				continue
			}
			blendPixel(dst, px, py, o.Color)
		}
	}
}

func drawLine(dst *image.RGBA, o Line) {
	half := o.Width / 2
	if o.X1 == o.X2 { // vertical
		y0 := math.Min(o.Y1, o.Y2)
		y1 := math.Max(o.Y1, o.Y2)
		fillRect(dst, o.X1-half, y0, math.Max(o.Width, 1), y1-y0, o.Color)
		return
	}
	x0 := math.Min(o.X1, o.X2)
	x1 := math.Max(o.X1, o.X2)
	fillRect(dst, x0, o.Y1-half, x1-x0, math.Max(o.Width, 1), o.Color)
}

func blit(dst *image.RGBA, o Blit) {
	if o.Src == nil {
		return
	}
	scaled := o.Src
	if o.Scale > 1 {
		scaled = images.Magnify(o.Src, o.Scale)
	}
	pos := image.Pt(int(math.Round(o.X)), int(math.Round(o.Y)))
	r := scaled.Bounds().Sub(scaled.Bounds().Min).Add(pos).Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, scaled, scaled.Bounds().Min.Add(r.Min.Sub(pos)), draw.Src)
}

func drawText(dst *image.RGBA, o Text) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(o.Color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(math.Round(o.X)), int(math.Round(o.Y))+basicfont.Face7x13.Ascent),
	}
	d.DrawString(o.Text)
}

func blendPixel(dst *image.RGBA, x, y int, c color.NRGBA) {
	r := image.Rect(x, y, x+1, y+1)
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}
