package theme

// Centralized palette for the selection overlay. Colors are raster
// values because the overlay composites frames directly rather than
// styling toolkit widgets.

import "image/color"

var (
	// Dim covers unselected screen area.
	Dim = color.NRGBA{R: 0, G: 0, B: 0, A: 128}

	// Selection border and handles.
	Border     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	HandleFill = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	HandleRing = color.NRGBA{R: 77, G: 77, B: 77, A: 255}

	// Predefined-region hints.
	RegionOutline     = color.NRGBA{R: 160, G: 200, B: 255, A: 200}
	RegionHoverFill   = color.NRGBA{R: 120, G: 170, B: 255, A: 60}
	RegionHoverStroke = color.NRGBA{R: 200, G: 225, B: 255, A: 255}

	// Crosshair lines.
	Crosshair = color.NRGBA{R: 255, G: 255, B: 255, A: 180}

	// Status line under the selection.
	StatusText = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	StatusBack = color.NRGBA{R: 0, G: 0, B: 0, A: 190}

	// Magnifier chrome.
	MagnifierBorder    = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	MagnifierGrid      = color.NRGBA{R: 0, G: 0, B: 0, A: 70}
	MagnifierCrosshair = color.NRGBA{R: 255, G: 255, B: 255, A: 140}
	MagnifierCenter    = color.NRGBA{R: 255, G: 80, B: 80, A: 255}
)

// Stroke and handle metrics shared by the render layer, in pixels.
const (
	BorderWidth     = 2.0
	HandleRadius    = 3.0
	HandleRingWidth = 1.0
	CrosshairWidth  = 1.0
)
