package model

// OverlayModel tracks the pointer state the render layer needs beyond
// the selection itself: the last known position and whether the pointer
// is currently over the overlay canvas. The zero value is usable and
// reports the pointer as outside.
type OverlayModel struct {
	pointerX float64
	pointerY float64
	inside   bool
}

// NewOverlayModel returns a pointer to a ready-to-use OverlayModel.
func NewOverlayModel() *OverlayModel { return &OverlayModel{} }

// SetPointer records the latest pointer position. Any position report
// implies the pointer is inside the canvas.
func (m *OverlayModel) SetPointer(x, y float64) {
	if m == nil {
		return
	}
	m.pointerX, m.pointerY = x, y
	m.inside = true
}

// SetInside records enter/leave transitions without touching the last
// known position.
func (m *OverlayModel) SetInside(inside bool) {
	if m == nil {
		return
	}
	m.inside = inside
}

// Pointer returns the last known position and the inside flag.
func (m *OverlayModel) Pointer() (x, y float64, inside bool) {
	if m == nil {
		return 0, 0, false
	}
	return m.pointerX, m.pointerY, m.inside
}
