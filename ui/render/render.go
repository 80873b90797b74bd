package render

import (
	"image"

	"snipsel/domain/selection"
	"snipsel/ui/theme"
)

// Options carries the magnifier parameters of the frame builder.
type Options struct {
	MagnifierGrid   int
	MagnifierFactor int
}

// BuildFrame produces the overlay draw list for one frame. It is a
// pure function of the captured image, the selection state, the cursor
// position and the pointer-inside flag; it never mutates the selection.
func BuildFrame(frame *image.RGBA, sel *selection.Selection, cursorX, cursorY float64, pointerInside bool, opts Options) []Op {
	screenW, screenH := sel.ScreenSize()
	rect, hasRect := sel.Rect()

	if !hasRect {
		ops := []Op{FillRect{X: 0, Y: 0, W: screenW, H: screenH, Color: theme.Dim}}
		ops = append(ops, regionOps(sel)...)
		if pointerInside {
			ops = append(ops,
				Line{X1: cursorX, Y1: 0, X2: cursorX, Y2: screenH, Width: theme.CrosshairWidth, Color: theme.Crosshair},
				Line{X1: 0, Y1: cursorY, X2: screenW, Y2: cursorY, Width: theme.CrosshairWidth, Color: theme.Crosshair},
			)
			ops = append(ops, buildMagnifier(frame, cursorX, cursorY, screenW, screenH, opts.MagnifierGrid, opts.MagnifierFactor)...)
		}
		return ops
	}

	n := rect.Normalized()
	ops := dimStrips(n, screenW, screenH)

	ops = append(ops, StrokeRect{
		X: n.X, Y: n.Y, W: n.Width, H: n.Height,
		Width: theme.BorderWidth, Color: theme.Border,
	})

	for _, h := range sel.CornerHandles() {
		r := h.Rect
		ops = append(ops,
			FillRoundedRect{
				X: r.X - theme.HandleRingWidth, Y: r.Y - theme.HandleRingWidth,
				W: r.Width + 2*theme.HandleRingWidth, H: r.Height + 2*theme.HandleRingWidth,
				Radius: theme.HandleRadius + 1, Color: theme.HandleRing,
			},
			FillRoundedRect{
				X: r.X, Y: r.Y, W: r.Width, H: r.Height,
				Radius: theme.HandleRadius, Color: theme.HandleFill,
			},
		)
	}

	ops = append(ops, statusOps(sel, screenW, screenH)...)

	if pointerInside {
		if tx, ty, ok := SnapPosition(sel, cursorX, cursorY); ok {
			ops = append(ops, buildMagnifier(frame, tx, ty, screenW, screenH, opts.MagnifierGrid, opts.MagnifierFactor)...)
		}
	}
	return ops
}

// dimStrips covers everything outside the selection with four
// non-overlapping rectangles: full-width top and bottom strips plus
// left and right strips spanning only the selection's height, so no
// corner is dimmed twice.
func dimStrips(n selection.Rect, screenW, screenH float64) []Op {
	var ops []Op
	if n.Y > 0 {
		ops = append(ops, FillRect{X: 0, Y: 0, W: screenW, H: n.Y, Color: theme.Dim})
	}
	if n.Bottom() < screenH {
		ops = append(ops, FillRect{X: 0, Y: n.Bottom(), W: screenW, H: screenH - n.Bottom(), Color: theme.Dim})
	}
	if n.X > 0 {
		ops = append(ops, FillRect{X: 0, Y: n.Y, W: n.X, H: n.Height, Color: theme.Dim})
	}
	if n.Right() < screenW {
		ops = append(ops, FillRect{X: n.Right(), Y: n.Y, W: screenW - n.Right(), H: n.Height, Color: theme.Dim})
	}
	return ops
}

// regionOps outlines every predefined region, with a translucent fill
// and brighter outline on the hovered one.
func regionOps(sel *selection.Selection) []Op {
	regions := sel.PredefinedRegions()
	if len(regions) == 0 {
		return nil
	}
	hovered, hasHovered := sel.HoveredRegion()

	var ops []Op
	for i, r := range regions {
		n := r.Normalized()
		if hasHovered && i == hovered {
			ops = append(ops,
				FillRect{X: n.X, Y: n.Y, W: n.Width, H: n.Height, Color: theme.RegionHoverFill},
				StrokeRect{X: n.X, Y: n.Y, W: n.Width, H: n.Height, Width: theme.BorderWidth, Color: theme.RegionHoverStroke},
			)
			continue
		}
		ops = append(ops, StrokeRect{X: n.X, Y: n.Y, W: n.Width, H: n.Height, Width: 1, Color: theme.RegionOutline})
	}
	return ops
}
