package capture

import "image"

// Frame is the captured screen image plus its pixel dimensions.
// It is taken once at session start and shared read-only afterwards.
type Frame struct {
	Image  *image.RGBA
	Width  int
	Height int
}

// Region is an integer crop rectangle in frame coordinates.
type Region struct {
	X, Y, Width, Height int
}

// FrameProvider yields the session frame; satisfied by Grab-backed and
// test sources alike.
type FrameProvider interface {
	Frame() (Frame, error)
}
