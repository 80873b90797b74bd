package render

import (
	"testing"

	"snipsel/domain/selection"
)

func TestSnapPosition_CreatingFollowsCursor(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(250.4, 310.9)

	x, y, ok := SnapPosition(sel, 250.4, 310.9)
	if !ok {
		t.Fatalf("magnifier must be visible during creation")
	}
	if x != 250.4 || y != 310.9 {
		t.Fatalf("expected raw cursor position, got (%v,%v)", x, y)
	}
}

func TestSnapPosition_MovingHidesMagnifier(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	sel.StartDrag(300, 250)
	if _, _, ok := SnapPosition(sel, 310, 260); ok {
		t.Fatalf("magnifier must be hidden while moving")
	}
}

func TestSnapPosition_CornerResizeSnapsToCorner(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	sel.StartDrag(100, 100) // top-left handle
	sel.UpdateDrag(153.7, 148.2)

	x, y, ok := SnapPosition(sel, 153.7, 148.2)
	if !ok {
		t.Fatalf("magnifier must be visible during resize")
	}
	if x != 153.7 || y != 148.2 {
		t.Fatalf("corner snap must track the exact corner, got (%v,%v)", x, y)
	}
}

func TestSnapPosition_EdgeResizeMixesAxes(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	sel.StartDrag(500, 250) // right edge band
	sel.UpdateDrag(560, 333)

	x, y, ok := SnapPosition(sel, 560, 333)
	if !ok {
		t.Fatalf("magnifier must be visible during edge resize")
	}
	// Free axis follows the cursor; the constrained axis pins to the
	// edge actually being placed.
	if x != 560 {
		t.Fatalf("right edge snap x must follow the edge, got %v", x)
	}
	if y != 333 {
		t.Fatalf("right edge snap y must follow the cursor, got %v", y)
	}
}

func TestSnapPosition_TopEdgePinsY(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	sel.StartDrag(300, 100) // top edge band
	sel.UpdateDrag(320, 80)

	x, y, ok := SnapPosition(sel, 320, 80)
	if !ok {
		t.Fatalf("magnifier must be visible during edge resize")
	}
	if x != 320 || y != 80 {
		t.Fatalf("top edge snap must be (cursor x, top y), got (%v,%v)", x, y)
	}
}

func TestSnapPosition_IdleInsideRectHidden(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	if _, _, ok := SnapPosition(sel, 300, 250); ok {
		t.Fatalf("magnifier must be hidden over the rect interior")
	}
	if _, _, ok := SnapPosition(sel, 500, 250); ok {
		t.Fatalf("magnifier must be hidden over an edge band")
	}
}

func TestSnapPosition_IdleOutsideRectVisible(t *testing.T) {
	sel := selection.New(1920, 1080)
	sel.StartDrag(100, 100)
	sel.UpdateDrag(500, 400)
	sel.EndDrag()

	x, y, ok := SnapPosition(sel, 900, 800)
	if !ok {
		t.Fatalf("magnifier must appear where a press would create")
	}
	if x != 900 || y != 800 {
		t.Fatalf("idle snap must be the raw cursor, got (%v,%v)", x, y)
	}
}

func TestSnapPosition_NoRectFollowsCursor(t *testing.T) {
	sel := selection.New(1920, 1080)
	x, y, ok := SnapPosition(sel, 12, 34)
	if !ok || x != 12 || y != 34 {
		t.Fatalf("expected (12,34,true), got (%v,%v,%v)", x, y, ok)
	}
}

func TestMagnifierBox_DefaultBottomRight(t *testing.T) {
	x, y := MagnifierBox(100, 100, 88, 1920, 1080)
	if x != 120 || y != 120 {
		t.Fatalf("expected (120,120), got (%v,%v)", x, y)
	}
}

func TestMagnifierBox_FlipsNearEdges(t *testing.T) {
	x, y := MagnifierBox(1900, 1060, 88, 1920, 1080)
	if x != 1900-20-88 || y != 1060-20-88 {
		t.Fatalf("expected flip to top-left side, got (%v,%v)", x, y)
	}
}

func TestMagnifierBox_ClampsWhenNeitherSideFits(t *testing.T) {
	// Tiny canvas: both placements overflow, clamp keeps it on-canvas.
	x, y := MagnifierBox(50, 50, 88, 100, 100)
	if x != 0 || y != 0 {
		t.Fatalf("expected clamped (0,0), got (%v,%v)", x, y)
	}
}
