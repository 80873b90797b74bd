package presenter

import (
	"testing"

	"snipsel/domain/selection"
	"snipsel/ui/model"
)

type fakeView struct {
	redraws int
	cursors []string
}

func (v *fakeView) RequestRedraw()        { v.redraws++ }
func (v *fakeView) SetCursor(name string) { v.cursors = append(v.cursors, name) }

type changeRecorder struct {
	regions []selection.CropRegion
	valids  []bool
}

func (r *changeRecorder) record(region selection.CropRegion, valid bool) {
	r.regions = append(r.regions, region)
	r.valids = append(r.valids, valid)
}

func newTestPresenter(t *testing.T) (*OverlayPresenter, *selection.Selection, *fakeView, *changeRecorder) {
	t.Helper()
	sel := selection.New(1920, 1080)
	view := &fakeView{}
	rec := &changeRecorder{}
	cursors, err := NewCursorCache()
	if err != nil {
		t.Fatalf("NewCursorCache: %v", err)
	}
	p := NewOverlayPresenter(nil, sel, model.NewOverlayModel(), view, cursors, rec.record)
	return p, sel, view, rec
}

func TestOverlayPresenter_CreateDragEmitsCropRegion(t *testing.T) {
	p, sel, view, rec := newTestPresenter(t)

	p.PointerPressed(100, 100)
	p.PointerDragged(500, 400)
	p.PointerReleased(500, 400)

	if view.redraws != 3 {
		t.Fatalf("expected a redraw per event, got %d", view.redraws)
	}
	if len(rec.regions) == 0 {
		t.Fatalf("expected change notifications")
	}
	last := rec.regions[len(rec.regions)-1]
	want := selection.CropRegion{X: 100, Y: 100, Width: 400, Height: 300}
	if last != want {
		t.Fatalf("expected %+v, got %+v", want, last)
	}
	if !rec.valids[len(rec.valids)-1] {
		t.Fatalf("final selection must be valid")
	}
	if _, ok := sel.Rect(); !ok {
		t.Fatalf("selection must persist after release")
	}
}

func TestOverlayPresenter_TinyDragReportedInvalid(t *testing.T) {
	p, _, _, rec := newTestPresenter(t)

	p.PointerPressed(100, 100)
	p.PointerDragged(110, 110)

	if len(rec.valids) == 0 {
		t.Fatalf("expected change notifications")
	}
	if rec.valids[len(rec.valids)-1] {
		t.Fatalf("a 10x10 drag must be reported invalid mid-drag")
	}
	last := rec.regions[len(rec.regions)-1]
	if last.Width != 10 || last.Height != 10 {
		t.Fatalf("crop region still reflects the live rect, got %+v", last)
	}
}

func TestOverlayPresenter_PressOnPredefinedRegionAdopts(t *testing.T) {
	p, sel, view, rec := newTestPresenter(t)
	sel.SetPredefinedRegions([]selection.Rect{selection.NewRect(10, 10, 200, 150)})

	p.PointerPressed(50, 50)

	rect, ok := sel.Rect()
	if !ok {
		t.Fatalf("press on a region must adopt it")
	}
	if rect.X != 10 || rect.Y != 10 || rect.Width != 200 || rect.Height != 150 {
		t.Fatalf("adoption must be verbatim, got %+v", rect)
	}
	if sel.DragMode().Kind != selection.DragNone {
		t.Fatalf("adoption must not start a drag")
	}
	if view.redraws != 1 {
		t.Fatalf("expected one redraw, got %d", view.redraws)
	}
	want := selection.CropRegion{X: 10, Y: 10, Width: 200, Height: 150}
	if rec.regions[len(rec.regions)-1] != want {
		t.Fatalf("expected %+v, got %+v", want, rec.regions[len(rec.regions)-1])
	}
}

func TestOverlayPresenter_RegionIgnoredOnceRectExists(t *testing.T) {
	p, sel, _, _ := newTestPresenter(t)
	sel.SetPredefinedRegions([]selection.Rect{selection.NewRect(10, 10, 200, 150)})

	p.PointerPressed(600, 600)
	p.PointerDragged(900, 800)
	p.PointerReleased(900, 800)

	p.PointerPressed(50, 50)
	if sel.DragMode().Kind != selection.DragCreating {
		t.Fatalf("press outside the rect must start a new creation, got %v", sel.DragMode().Kind)
	}
}

func TestOverlayPresenter_HoverSetsPointerCursor(t *testing.T) {
	p, sel, view, _ := newTestPresenter(t)
	sel.SetPredefinedRegions([]selection.Rect{selection.NewRect(10, 10, 200, 150)})

	p.PointerMoved(50, 50)

	if _, ok := sel.HoveredRegion(); !ok {
		t.Fatalf("hover must be tracked")
	}
	if len(view.cursors) == 0 || view.cursors[len(view.cursors)-1] != "hand2" {
		t.Fatalf("expected pointer cursor over a region, got %v", view.cursors)
	}
}

func TestOverlayPresenter_CursorNotReappliedUnchanged(t *testing.T) {
	p, _, view, _ := newTestPresenter(t)

	p.PointerMoved(50, 50)
	p.PointerMoved(60, 60)
	p.PointerMoved(70, 70)

	if len(view.cursors) != 1 {
		t.Fatalf("identical cursor must be applied once, got %v", view.cursors)
	}
	if view.cursors[0] != "crosshair" {
		t.Fatalf("expected crosshair, got %q", view.cursors[0])
	}
}

func TestOverlayPresenter_MoveDragUsesGrabbingCursor(t *testing.T) {
	p, _, view, _ := newTestPresenter(t)

	p.PointerPressed(100, 100)
	p.PointerDragged(500, 400)
	p.PointerReleased(500, 400)

	p.PointerPressed(300, 250)
	p.PointerDragged(320, 270)

	if view.cursors[len(view.cursors)-1] != "fleur" {
		t.Fatalf("expected grabbing cursor mid-move, got %v", view.cursors)
	}
}

func TestOverlayPresenter_SelectAllCoversScreen(t *testing.T) {
	p, _, _, rec := newTestPresenter(t)

	p.SelectAll()

	want := selection.CropRegion{X: 0, Y: 0, Width: 1920, Height: 1080}
	if rec.regions[len(rec.regions)-1] != want {
		t.Fatalf("expected %+v, got %+v", want, rec.regions[len(rec.regions)-1])
	}
}

func TestOverlayPresenter_DragWithoutPressIgnored(t *testing.T) {
	p, _, view, rec := newTestPresenter(t)

	p.PointerDragged(500, 400)

	if view.redraws != 0 || len(rec.regions) != 0 {
		t.Fatalf("drag with no press must be ignored")
	}
}

func TestOverlayPresenter_NilSafe(t *testing.T) {
	var p *OverlayPresenter
	p.PointerPressed(1, 1)
	p.PointerDragged(2, 2)
	p.PointerReleased(3, 3)
	p.PointerMoved(4, 4)
	p.PointerLeft()
	p.SelectAll()
}
