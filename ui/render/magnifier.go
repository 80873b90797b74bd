package render

import (
	"image"
	"math"

	"snipsel/domain/selection"
	"snipsel/ui/images"
	"snipsel/ui/theme"
)

// Magnifier box placement relative to the target point, in pixels.
const magnifierMargin = 20.0

// SnapPosition returns the point the magnifier should center on for
// the current interaction, and whether it is shown at all.
//
// Creating follows the raw cursor. Resizing pins to the pixel actually
// being placed: corner anchors snap to the exact corner, midpoint
// anchors take the cursor on their free axis and the rect's fixed
// coordinate on the constrained axis. Moving shows no magnifier. While
// idle the magnifier appears only in the dimmed area outside the rect,
// where a press would start a new selection.
func SnapPosition(sel *selection.Selection, cursorX, cursorY float64) (float64, float64, bool) {
	rect, hasRect := sel.Rect()
	mode := sel.DragMode()

	switch mode.Kind {
	case selection.DragCreating:
		return cursorX, cursorY, true
	case selection.DragMoving:
		return 0, 0, false
	case selection.DragResizing:
		n := rect.Normalized()
		switch mode.Edge {
		case selection.EdgeTopLeft:
			return n.X, n.Y, true
		case selection.EdgeTopRight:
			return n.Right(), n.Y, true
		case selection.EdgeBottomRight:
			return n.Right(), n.Bottom(), true
		case selection.EdgeBottomLeft:
			return n.X, n.Bottom(), true
		case selection.EdgeTop:
			return cursorX, n.Y, true
		case selection.EdgeBottom:
			return cursorX, n.Bottom(), true
		case selection.EdgeLeft:
			return n.X, cursorY, true
		default: // EdgeRight
			return n.Right(), cursorY, true
		}
	}

	if !hasRect {
		return cursorX, cursorY, true
	}
	if rect.Contains(cursorX, cursorY) {
		return 0, 0, false
	}
	if sel.HitTest(cursorX, cursorY).Kind != selection.DragCreating {
		return 0, 0, false
	}
	return cursorX, cursorY, true
}

// MagnifierBox returns the top-left corner of a box of the given size
// placed near the target: offset by a fixed margin toward the bottom
// right, flipped to the opposite side on overflow, then clamped fully
// on-canvas as a last resort.
func MagnifierBox(targetX, targetY, size, screenW, screenH float64) (float64, float64) {
	x := targetX + magnifierMargin
	if x+size > screenW {
		x = targetX - magnifierMargin - size
	}
	y := targetY + magnifierMargin
	if y+size > screenH {
		y = targetY - magnifierMargin - size
	}
	x = clampFloat(x, 0, math.Max(0, screenW-size))
	y = clampFloat(y, 0, math.Max(0, screenH-size))
	return x, y
}

// buildMagnifier emits the magnifier ops for a target point: scaled
// source pixels pinned under the target, grid separators, a centered
// crosshair and a highlight ring on the exact center pixel.
func buildMagnifier(frame *image.RGBA, targetX, targetY, screenW, screenH float64, grid, factor int) []Op {
	win := images.ExtractWindow(frame, targetX, targetY, grid)
	size := float64(grid * factor)
	boxX, boxY := MagnifierBox(targetX, targetY, size, screenW, screenH)

	ops := []Op{
		// Backdrop shows through where the source window leaves the image.
		FillRect{X: boxX, Y: boxY, W: size, H: size, Color: theme.Dim},
		Blit{
			Src:   win.Pixels,
			X:     boxX + float64(win.OffsetX*factor),
			Y:     boxY + float64(win.OffsetY*factor),
			Scale: factor,
		},
	}

	// Grid separator lines between source pixels.
	for i := 1; i < grid; i++ {
		p := float64(i * factor)
		ops = append(ops,
			Line{X1: boxX + p, Y1: boxY, X2: boxX + p, Y2: boxY + size, Width: 1, Color: theme.MagnifierGrid},
			Line{X1: boxX, Y1: boxY + p, X2: boxX + size, Y2: boxY + p, Width: 1, Color: theme.MagnifierGrid},
		)
	}

	// Crosshair through the box center.
	ops = append(ops,
		Line{X1: boxX + size/2, Y1: boxY, X2: boxX + size/2, Y2: boxY + size, Width: 1, Color: theme.MagnifierCrosshair},
		Line{X1: boxX, Y1: boxY + size/2, X2: boxX + size, Y2: boxY + size/2, Width: 1, Color: theme.MagnifierCrosshair},
	)

	// Highlight the center pixel cell and frame the box.
	center := float64((grid / 2) * factor)
	ops = append(ops,
		StrokeRect{X: boxX + center, Y: boxY + center, W: float64(factor), H: float64(factor), Width: 1, Color: theme.MagnifierCenter},
		StrokeRect{X: boxX, Y: boxY, W: size, H: size, Width: theme.BorderWidth, Color: theme.MagnifierBorder},
	)
	return ops
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
