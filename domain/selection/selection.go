package selection

import "math"

// Selection is the pointer-driven state machine behind the overlay: an
// optional selection rectangle, the interaction mode in progress and
// the bookkeeping needed to resize and move without cumulative drift.
//
// All mutation happens synchronously on the interaction thread in
// response to discrete pointer events; the render layer only reads.

// ResizeEdge identifies the handle or edge band a resize drag grabs.
type ResizeEdge int

const (
	EdgeTopLeft ResizeEdge = iota
	EdgeTopRight
	EdgeBottomRight
	EdgeBottomLeft
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// CursorName returns the cursor identity shown over this edge/handle.
func (e ResizeEdge) CursorName() string {
	switch e {
	case EdgeTopLeft:
		return "nw-resize"
	case EdgeTopRight:
		return "ne-resize"
	case EdgeBottomRight:
		return "se-resize"
	case EdgeBottomLeft:
		return "sw-resize"
	case EdgeTop:
		return "n-resize"
	case EdgeRight:
		return "e-resize"
	case EdgeBottom:
		return "s-resize"
	default:
		return "w-resize"
	}
}

// IsCorner reports whether the edge is one of the four corner handles.
func (e ResizeEdge) IsCorner() bool {
	switch e {
	case EdgeTopLeft, EdgeTopRight, EdgeBottomRight, EdgeBottomLeft:
		return true
	}
	return false
}

// DragKind enumerates the mutually exclusive interaction modes.
type DragKind int

const (
	DragNone DragKind = iota
	DragCreating
	DragMoving
	DragResizing
)

// DragMode is the tagged interaction variant; Edge is meaningful only
// when Kind is DragResizing.
type DragMode struct {
	Kind DragKind
	Edge ResizeEdge
}

// Cursor identities outside the resize set.
const (
	CursorCrosshair = "crosshair"
	CursorGrab      = "grab"
	CursorGrabbing  = "grabbing"
	CursorPointer   = "pointer"
)

// CropRegion is the integer-rounded rectangle handed to export.
type CropRegion struct {
	X, Y, Width, Height int
}

// CornerHandle pairs a corner anchor with its hit/draw rectangle.
type CornerHandle struct {
	Edge ResizeEdge
	Rect Rect
}

// Selection owns all per-session selection state. The zero value is
// unusable; construct with New once screen dimensions are known.
type Selection struct {
	rect         *Rect
	screenWidth  float64
	screenHeight float64

	dragMode          DragMode
	dragStartX        float64
	dragStartY        float64
	dragStartRect     *Rect
	predefinedRegions []Rect
	hoveredRegion     int // index into predefinedRegions, -1 when none
}

// New creates a Selection for a canvas of the given pixel dimensions.
func New(screenWidth, screenHeight float64) *Selection {
	return &Selection{
		screenWidth:   screenWidth,
		screenHeight:  screenHeight,
		hoveredRegion: -1,
	}
}

// SetPredefinedRegions installs the externally supplied candidate
// rectangles. The list is set once per session; indices stay stable.
func (s *Selection) SetPredefinedRegions(regions []Rect) {
	s.predefinedRegions = regions
	s.hoveredRegion = -1
}

// Rect returns the current selection rectangle, if any. The returned
// rect may be un-normalized while a creation drag is in progress.
func (s *Selection) Rect() (Rect, bool) {
	if s.rect == nil {
		return Rect{}, false
	}
	return *s.rect, true
}

// ScreenSize returns the canvas dimensions the selection is bound to.
func (s *Selection) ScreenSize() (float64, float64) {
	return s.screenWidth, s.screenHeight
}

// DragMode returns the interaction currently in progress.
func (s *Selection) DragMode() DragMode { return s.dragMode }

// PredefinedRegions returns the session's candidate rectangles.
func (s *Selection) PredefinedRegions() []Rect { return s.predefinedRegions }

// HoveredRegion returns the index of the hovered predefined region.
// Meaningful only while no selection rectangle exists.
func (s *Selection) HoveredRegion() (int, bool) {
	if s.hoveredRegion < 0 {
		return 0, false
	}
	return s.hoveredRegion, true
}

// CornerHandles returns the four corner handle rectangles for the
// current selection, or nil when there is none.
func (s *Selection) CornerHandles() []CornerHandle {
	if s.rect == nil {
		return nil
	}
	n := s.rect.Normalized()
	half := HandleSize / 2

	return []CornerHandle{
		{EdgeTopLeft, NewRect(n.X-half, n.Y-half, HandleSize, HandleSize)},
		{EdgeTopRight, NewRect(n.Right()-half, n.Y-half, HandleSize, HandleSize)},
		{EdgeBottomRight, NewRect(n.Right()-half, n.Bottom()-half, HandleSize, HandleSize)},
		{EdgeBottomLeft, NewRect(n.X-half, n.Bottom()-half, HandleSize, HandleSize)},
	}
}

func (s *Selection) hitTestCorner(x, y float64) (ResizeEdge, bool) {
	for _, h := range s.CornerHandles() {
		if h.Rect.Contains(x, y) {
			return h.Edge, true
		}
	}
	return 0, false
}

func (s *Selection) hitTestEdge(x, y float64) (ResizeEdge, bool) {
	if s.rect == nil {
		return 0, false
	}
	n := s.rect.Normalized()
	grab := float64(EdgeGrabWidth)
	half := HandleSize / 2

	// The orthogonal coordinate must fall between the adjacent corner
	// handle half-extents; the corners themselves are tested first.
	inHorizontal := x >= n.X+half && x <= n.Right()-half
	inVertical := y >= n.Y+half && y <= n.Bottom()-half

	switch {
	case inHorizontal && y >= n.Y-grab && y <= n.Y+grab:
		return EdgeTop, true
	case inHorizontal && y >= n.Bottom()-grab && y <= n.Bottom()+grab:
		return EdgeBottom, true
	case inVertical && x >= n.X-grab && x <= n.X+grab:
		return EdgeLeft, true
	case inVertical && x >= n.Right()-grab && x <= n.Right()+grab:
		return EdgeRight, true
	}
	return 0, false
}

// HitTest resolves the drag mode a press at (x, y) would start.
// Priority: corner handle > edge band > interior (move) > exterior
// (create). Exactly one mode results.
func (s *Selection) HitTest(x, y float64) DragMode {
	if edge, ok := s.hitTestCorner(x, y); ok {
		return DragMode{Kind: DragResizing, Edge: edge}
	}
	if edge, ok := s.hitTestEdge(x, y); ok {
		return DragMode{Kind: DragResizing, Edge: edge}
	}
	if s.rect != nil && s.rect.Contains(x, y) {
		return DragMode{Kind: DragMoving}
	}
	return DragMode{Kind: DragCreating}
}

// CursorForPosition returns the cursor identity for a pointer at
// (x, y). While a move drag is in progress the grabbing identity is
// reported unconditionally so the cursor does not flicker across
// handles mid-move.
func (s *Selection) CursorForPosition(x, y float64) string {
	if s.dragMode.Kind == DragMoving {
		return CursorGrabbing
	}
	if edge, ok := s.hitTestCorner(x, y); ok {
		return edge.CursorName()
	}
	if edge, ok := s.hitTestEdge(x, y); ok {
		return edge.CursorName()
	}
	if s.rect != nil && s.rect.Contains(x, y) {
		return CursorGrab
	}
	return CursorCrosshair
}

// StartDrag begins an interaction at (x, y). The mode comes from
// HitTest; a creating drag materializes a zero-sized rect at the press
// point immediately.
func (s *Selection) StartDrag(x, y float64) {
	s.dragMode = s.HitTest(x, y)
	s.dragStartX, s.dragStartY = x, y
	if s.rect != nil {
		snapshot := *s.rect
		s.dragStartRect = &snapshot
	} else {
		s.dragStartRect = nil
	}

	if s.dragMode.Kind == DragCreating {
		r := NewRect(x, y, 0, 0)
		s.rect = &r
	}
}

// UpdateDrag advances the interaction to pointer position (x, y).
// Deltas are taken against the original press point, never the previous
// move, so repeated updates cannot accumulate drift.
func (s *Selection) UpdateDrag(x, y float64) {
	dx := x - s.dragStartX
	dy := y - s.dragStartY

	switch s.dragMode.Kind {
	case DragNone:
	case DragCreating:
		r := NewRect(s.dragStartX, s.dragStartY, dx, dy)
		s.rect = &r
	case DragMoving:
		if s.dragStartRect != nil {
			moved := NewRect(s.dragStartRect.X+dx, s.dragStartRect.Y+dy, s.dragStartRect.Width, s.dragStartRect.Height)
			moved = moved.Constrain(s.screenWidth, s.screenHeight)
			s.rect = &moved
		}
	case DragResizing:
		if s.dragStartRect != nil {
			resized := applyResize(*s.dragStartRect, s.dragMode.Edge, dx, dy)
			resized = resized.Constrain(s.screenWidth, s.screenHeight)
			s.rect = &resized
		}
	}
}

// applyResize adjusts the drag-start snapshot for the grabbed anchor.
// Each anchor moves only its adjacent side(s); dragging past the
// opposite corner yields a negative dimension which the following
// normalize pass flips, so the grabbed edge never re-identifies.
func applyResize(start Rect, edge ResizeEdge, dx, dy float64) Rect {
	r := start
	switch edge {
	case EdgeTopLeft:
		r.X = start.X + dx
		r.Y = start.Y + dy
		r.Width = start.Width - dx
		r.Height = start.Height - dy
	case EdgeTop:
		r.Y = start.Y + dy
		r.Height = start.Height - dy
	case EdgeTopRight:
		r.Y = start.Y + dy
		r.Width = start.Width + dx
		r.Height = start.Height - dy
	case EdgeRight:
		r.Width = start.Width + dx
	case EdgeBottomRight:
		r.Width = start.Width + dx
		r.Height = start.Height + dy
	case EdgeBottom:
		r.Height = start.Height + dy
	case EdgeBottomLeft:
		r.X = start.X + dx
		r.Width = start.Width - dx
		r.Height = start.Height + dy
	case EdgeLeft:
		r.X = start.X + dx
		r.Width = start.Width - dx
	}
	return r
}

// EndDrag finalizes the interaction: the rect is normalized and
// constrained, the drag bookkeeping cleared.
func (s *Selection) EndDrag() {
	if s.rect != nil {
		final := s.rect.Normalized().Constrain(s.screenWidth, s.screenHeight)
		s.rect = &final
	}
	s.dragMode = DragMode{Kind: DragNone}
	s.dragStartRect = nil
}

// FindPredefinedRegionAt returns the index of the first predefined
// region containing the point, in list order.
func (s *Selection) FindPredefinedRegionAt(x, y float64) (int, bool) {
	for i, r := range s.predefinedRegions {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// UpdateHoveredRegion refreshes the hovered index for a pointer at
// (x, y). Hover highlighting only applies before a selection exists.
func (s *Selection) UpdateHoveredRegion(x, y float64) {
	if s.rect != nil {
		s.hoveredRegion = -1
		return
	}
	if i, ok := s.FindPredefinedRegionAt(x, y); ok {
		s.hoveredRegion = i
	} else {
		s.hoveredRegion = -1
	}
}

// SelectPredefinedRegion adopts region i verbatim as the selection,
// with no constrain pass, and reports whether the index existed.
// Externally supplied regions are assumed already valid.
func (s *Selection) SelectPredefinedRegion(i int) bool {
	if i < 0 || i >= len(s.predefinedRegions) {
		return false
	}
	adopted := s.predefinedRegions[i]
	s.rect = &adopted
	s.hoveredRegion = -1
	return true
}

// SelectAll replaces the selection with the full canvas bounds,
// bypassing the drag machinery.
func (s *Selection) SelectAll() {
	r := NewRect(0, 0, s.screenWidth, s.screenHeight)
	s.rect = &r
	s.dragMode = DragMode{Kind: DragNone}
	s.dragStartRect = nil
	s.hoveredRegion = -1
}

// CropRegion returns the selection rounded to integer pixels. This is
// the only channel through which the selection reaches export.
func (s *Selection) CropRegion() (CropRegion, bool) {
	if s.rect == nil {
		return CropRegion{}, false
	}
	n := s.rect.Normalized()
	return CropRegion{
		X:      int(math.Round(n.X)),
		Y:      int(math.Round(n.Y)),
		Width:  int(math.Round(n.Width)),
		Height: int(math.Round(n.Height)),
	}, true
}

// HasValidSelection reports whether a selection exists and meets the
// minimum size in both dimensions.
func (s *Selection) HasValidSelection() bool {
	if s.rect == nil {
		return false
	}
	n := s.rect.Normalized()
	return n.Width >= MinSize && n.Height >= MinSize
}
