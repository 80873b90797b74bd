package capture

import (
	"fmt"

	"github.com/vova616/screenshot"
)

// Grab captures the current screen into a Frame.
func Grab() (Frame, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return Frame{}, fmt.Errorf("capture screen: %w", err)
	}
	b := img.Bounds()
	return Frame{Image: img, Width: b.Dx(), Height: b.Dy()}, nil
}

// ScreenGrabber adapts Grab to the FrameProvider interface.
type ScreenGrabber struct{}

func (ScreenGrabber) Frame() (Frame, error) { return Grab() }
