package images

import (
	"image"
	"testing"
)

func TestExtractWindow_CenteredInterior(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	w := ExtractWindow(frame, 50.7, 50.2, 11)
	if w.CenterX != 50 || w.CenterY != 50 {
		t.Fatalf("expected center (50,50), got (%d,%d)", w.CenterX, w.CenterY)
	}
	if w.Pixels.Bounds().Dx() != 11 || w.Pixels.Bounds().Dy() != 11 {
		t.Fatalf("expected full 11x11 window, got %v", w.Pixels.Bounds())
	}
	if w.OffsetX != 0 || w.OffsetY != 0 {
		t.Fatalf("interior window must have zero offset, got (%d,%d)", w.OffsetX, w.OffsetY)
	}
}

func TestExtractWindow_TopLeftCornerCompensates(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	w := ExtractWindow(frame, 0, 0, 11)
	// Ideal window starts at -5; only cells 5..10 are valid.
	if w.OffsetX != 5 || w.OffsetY != 5 {
		t.Fatalf("expected offset (5,5), got (%d,%d)", w.OffsetX, w.OffsetY)
	}
	if w.Pixels.Bounds().Dx() != 6 || w.Pixels.Bounds().Dy() != 6 {
		t.Fatalf("expected 6x6 valid subgrid, got %v", w.Pixels.Bounds())
	}
}

func TestExtractWindow_BottomRightEdge(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	w := ExtractWindow(frame, 99.9, 99.9, 11)
	if w.CenterX != 99 || w.CenterY != 99 {
		t.Fatalf("expected center (99,99), got (%d,%d)", w.CenterX, w.CenterY)
	}
	if w.OffsetX != 0 || w.OffsetY != 0 {
		t.Fatalf("leading cells are valid, offset must be zero, got (%d,%d)", w.OffsetX, w.OffsetY)
	}
	if w.Pixels.Bounds().Dx() != 6 || w.Pixels.Bounds().Dy() != 6 {
		t.Fatalf("expected 6x6 valid subgrid, got %v", w.Pixels.Bounds())
	}
}

func TestExtractWindow_ForcesOddGrid(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	w := ExtractWindow(frame, 50, 50, 10)
	if w.Pixels.Bounds().Dx() != 11 {
		t.Fatalf("even grid must be bumped to odd, got %d", w.Pixels.Bounds().Dx())
	}
}

func TestExtractWindow_ClampsCenterOutsideImage(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 100, 100))
	w := ExtractWindow(frame, 500, -3, 11)
	if w.CenterX != 99 || w.CenterY != 0 {
		t.Fatalf("expected clamped center (99,0), got (%d,%d)", w.CenterX, w.CenterY)
	}
}

func TestMagnify_IntegerFactor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 11, 11))
	dst := Magnify(src, 8)
	if dst.Bounds().Dx() != 88 || dst.Bounds().Dy() != 88 {
		t.Fatalf("expected 88x88, got %v", dst.Bounds())
	}
}
