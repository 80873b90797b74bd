package presenter

import (
	"log/slog"

	"snipsel/domain/selection"
	"snipsel/ui/model"
)

// OverlayView is what the presenter needs from the overlay window.
type OverlayView interface {
	RequestRedraw()
	SetCursor(tkName string)
}

// SelectionChanged receives the integer crop region after every
// mutation, with valid reporting whether it meets the minimum size.
type SelectionChanged func(region selection.CropRegion, valid bool)

// OverlayPresenter translates pointer events into selection mutations
// and drives redraws and cursor updates on the view.
type OverlayPresenter struct {
	logger    *slog.Logger
	sel       *selection.Selection
	pointer   *model.OverlayModel
	view      OverlayView
	cursors   *CursorCache
	onChanged SelectionChanged
}

func NewOverlayPresenter(logger *slog.Logger, sel *selection.Selection, pointer *model.OverlayModel, view OverlayView, cursors *CursorCache, onChanged SelectionChanged) *OverlayPresenter {
	return &OverlayPresenter{
		logger:    logger,
		sel:       sel,
		pointer:   pointer,
		view:      view,
		cursors:   cursors,
		onChanged: onChanged,
	}
}

// PointerPressed handles a primary-button press. A press on a
// predefined region while no selection exists adopts that region
// instead of starting a drag.
func (p *OverlayPresenter) PointerPressed(x, y float64) {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.pointer.SetPointer(x, y)

	if _, hasRect := p.sel.Rect(); !hasRect {
		if i, ok := p.sel.FindPredefinedRegionAt(x, y); ok {
			p.adoptRegion(i)
			return
		}
	}

	p.sel.StartDrag(x, y)
	p.notifyChanged()
	p.refreshCursor(x, y)
	p.view.RequestRedraw()
}

// PointerDragged handles motion while the button is held.
func (p *OverlayPresenter) PointerDragged(x, y float64) {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.pointer.SetPointer(x, y)
	if p.sel.DragMode().Kind == selection.DragNone {
		return
	}
	p.sel.UpdateDrag(x, y)
	p.notifyChanged()
	p.refreshCursor(x, y)
	p.view.RequestRedraw()
}

// PointerReleased finalizes the interaction in progress.
func (p *OverlayPresenter) PointerReleased(x, y float64) {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.pointer.SetPointer(x, y)
	p.sel.EndDrag()
	p.notifyChanged()
	p.refreshCursor(x, y)
	p.view.RequestRedraw()
}

// PointerMoved handles hover motion with no button held.
func (p *OverlayPresenter) PointerMoved(x, y float64) {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.pointer.SetPointer(x, y)
	p.sel.UpdateHoveredRegion(x, y)
	p.refreshCursor(x, y)
	p.view.RequestRedraw()
}

// PointerEntered marks the pointer inside the canvas.
func (p *OverlayPresenter) PointerEntered(x, y float64) {
	if p == nil || p.view == nil {
		return
	}
	p.pointer.SetPointer(x, y)
	p.view.RequestRedraw()
}

// PointerLeft marks the pointer outside; position feedback disappears
// until it returns.
func (p *OverlayPresenter) PointerLeft() {
	if p == nil || p.view == nil {
		return
	}
	p.pointer.SetInside(false)
	p.view.RequestRedraw()
}

// SelectAll replaces the selection with the whole canvas.
func (p *OverlayPresenter) SelectAll() {
	if p == nil || p.sel == nil || p.view == nil {
		return
	}
	p.sel.SelectAll()
	p.notifyChanged()
	if x, y, inside := p.pointer.Pointer(); inside {
		p.refreshCursor(x, y)
	}
	p.view.RequestRedraw()
}

func (p *OverlayPresenter) adoptRegion(i int) {
	if !p.sel.SelectPredefinedRegion(i) {
		return
	}
	if rect, ok := p.sel.Rect(); ok {
		w, h := p.sel.ScreenSize()
		if rect.X < 0 || rect.Y < 0 || rect.Right() > w || rect.Bottom() > h {
			if p.logger != nil {
				p.logger.Debug("adopted region extends past screen bounds",
					slog.Float64("x", rect.X), slog.Float64("y", rect.Y),
					slog.Float64("width", rect.Width), slog.Float64("height", rect.Height))
			}
		}
	}
	p.notifyChanged()
	x, y, _ := p.pointer.Pointer()
	p.refreshCursor(x, y)
	p.view.RequestRedraw()
}

func (p *OverlayPresenter) notifyChanged() {
	if p.onChanged == nil {
		return
	}
	region, ok := p.sel.CropRegion()
	if !ok {
		return
	}
	p.onChanged(region, p.sel.HasValidSelection())
}

// refreshCursor applies the cursor for the position, preferring the
// pointer identity over a hovered predefined region.
func (p *OverlayPresenter) refreshCursor(x, y float64) {
	logical := p.sel.CursorForPosition(x, y)
	if _, hovered := p.sel.HoveredRegion(); hovered && p.sel.DragMode().Kind == selection.DragNone {
		logical = selection.CursorPointer
	}
	if name, changed := p.cursors.Apply(logical); changed {
		p.view.SetCursor(name)
	}
}
