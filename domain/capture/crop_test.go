package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testFrame builds a frame whose pixel at (x,y) encodes its position.
func testFrame(w, h int) Frame {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	return Frame{Image: img, Width: w, Height: h}
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func TestCrop_ExactRegion(t *testing.T) {
	f := testFrame(100, 80)
	data, err := f.Crop(Region{X: 10, Y: 20, Width: 30, Height: 40})
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	img := decode(t, data)
	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 40 {
		t.Fatalf("unexpected crop size %v", img.Bounds())
	}
	r, g, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 10 || uint8(g>>8) != 20 {
		t.Fatalf("crop origin wrong: r=%d g=%d", r>>8, g>>8)
	}
}

func TestCrop_ClampsOversizedRegion(t *testing.T) {
	f := testFrame(50, 50)
	data, err := f.Crop(Region{X: 40, Y: 40, Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	img := decode(t, data)
	if img.Bounds().Dx() != 10 || img.Bounds().Dy() != 10 {
		t.Fatalf("expected clamp to 10x10, got %v", img.Bounds())
	}
}

func TestCrop_NegativeOriginClampsToZero(t *testing.T) {
	f := testFrame(50, 50)
	data, err := f.Crop(Region{X: -10, Y: -10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	img := decode(t, data)
	r, g, _, _ := img.At(0, 0).RGBA()
	if uint8(r>>8) != 0 || uint8(g>>8) != 0 {
		t.Fatalf("expected origin clamped to frame start, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestCrop_MinimumOnePixel(t *testing.T) {
	f := testFrame(50, 50)
	data, err := f.Crop(Region{X: 10, Y: 10, Width: 0, Height: 0})
	if err != nil {
		t.Fatalf("crop: %v", err)
	}
	img := decode(t, data)
	if img.Bounds().Dx() != 1 || img.Bounds().Dy() != 1 {
		t.Fatalf("expected 1x1 floor, got %v", img.Bounds())
	}
}

func TestCrop_NilImageErrors(t *testing.T) {
	var f Frame
	if _, err := f.Crop(Region{X: 0, Y: 0, Width: 10, Height: 10}); err == nil {
		t.Fatalf("expected error for nil frame")
	}
}
