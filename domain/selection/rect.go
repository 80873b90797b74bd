package selection

// Geometry constants for the selection overlay, in canvas pixels.
const (
	// HandleSize is the side length of a corner resize handle.
	HandleSize = 14.0
	// EdgeGrabWidth is the half-width of the grab band along each side.
	EdgeGrabWidth = 8.0
	// MinSize is the minimum width/height of a finalized selection.
	MinSize = 20.0
)

// Rect is an axis-aligned rectangle in canvas coordinates. Width and
// height may be negative while a creation drag is in progress; callers
// normalize before reading bounds.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a rectangle with the given origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Normalized returns an equivalent rectangle with non-negative width
// and height, flipping the origin across negative dimensions.
func (r Rect) Normalized() Rect {
	n := r
	if n.Width < 0 {
		n.X += n.Width
		n.Width = -n.Width
	}
	if n.Height < 0 {
		n.Y += n.Height
		n.Height = -n.Height
	}
	return n
}

// Contains reports whether the point lies within the normalized
// rectangle, bounds inclusive.
func (r Rect) Contains(px, py float64) bool {
	n := r.Normalized()
	return px >= n.X && px <= n.X+n.Width && py >= n.Y && py <= n.Y+n.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Constrain normalizes the rectangle, enforces the minimum selection
// size and keeps it within the screen bounds. When the screen itself is
// smaller than MinSize in a dimension, the size clamps to the screen.
func (r Rect) Constrain(screenWidth, screenHeight float64) Rect {
	n := r.Normalized()

	if n.Width < MinSize {
		n.Width = MinSize
	}
	if n.Height < MinSize {
		n.Height = MinSize
	}

	if n.X < 0 {
		n.X = 0
	}
	if n.Y < 0 {
		n.Y = 0
	}

	if n.X+n.Width > screenWidth {
		n.X = screenWidth - n.Width
	}
	if n.Y+n.Height > screenHeight {
		n.Y = screenHeight - n.Height
	}

	// Final bounds check
	if n.X < 0 {
		n.X = 0
	}
	if n.Y < 0 {
		n.Y = 0
	}
	if n.Width > screenWidth {
		n.Width = screenWidth
	}
	if n.Height > screenHeight {
		n.Height = screenHeight
	}

	return n
}
