package view

import (
	"image"
	"log/slog"

	"snipsel/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayHandlers are the callbacks the overlay window raises for user
// input. Coordinates are canvas pixels.
type OverlayHandlers struct {
	OnPress     func(x, y float64)
	OnDrag      func(x, y float64)
	OnRelease   func(x, y float64)
	OnMove      func(x, y float64)
	OnEnter     func(x, y float64)
	OnLeave     func()
	OnCancel    func()
	OnConfirm   func()
	OnSelectAll func()
	OnCopy      func()
	OnSave      func()
}

// Overlay is the fullscreen selection window.
type Overlay interface {
	Build(handlers OverlayHandlers)
	RequestRedraw()
	SetCursor(tkName string)
	Run()
	Close()
}

type overlay struct {
	logger    *slog.Logger
	render    func() *image.RGBA
	label     *LabelWidget
	prevPhoto *Img
	closed    bool
}

// NewOverlay creates the overlay window view. render is called on every
// redraw request and must return the finished frame to display.
func NewOverlay(logger *slog.Logger, render func() *image.RGBA) Overlay {
	return &overlay{logger: logger, render: render}
}

func (v *overlay) Build(h OverlayHandlers) {
	if v == nil {
		return
	}
	App.WmTitle("snipsel")
	WmAttributes(App, "-fullscreen", 1)
	WmAttributes(App, "-topmost", 1)

	frame := v.render()
	pngBytes := images.EncodePNG(frame)
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label = Label(Image(v.prevPhoto), Borderwidth(0))
	Pack(v.label)

	bindPointer := func(event string, fn func(x, y float64)) {
		Bind(App, event, Command(func(e *Event) {
			if fn != nil {
				fn(float64(e.X), float64(e.Y))
			}
		}))
	}
	bindPointer("<ButtonPress-1>", h.OnPress)
	bindPointer("<B1-Motion>", h.OnDrag)
	bindPointer("<ButtonRelease-1>", h.OnRelease)
	bindPointer("<Motion>", h.OnMove)
	bindPointer("<Enter>", h.OnEnter)

	Bind(App, "<Leave>", Command(func() {
		if h.OnLeave != nil {
			h.OnLeave()
		}
	}))
	bindKey := func(event string, fn func()) {
		Bind(App, event, Command(func() {
			if fn != nil {
				fn()
			}
		}))
	}
	bindKey("<Escape>", h.OnCancel)
	bindKey("<Return>", h.OnConfirm)
	bindKey("<Control-a>", h.OnSelectAll)
	bindKey("<Control-c>", h.OnCopy)
	bindKey("<Control-s>", h.OnSave)
}

// RequestRedraw renders the current state and swaps the displayed
// photo. The previous Tk image is deleted first so stale pixel buffers
// do not accumulate.
func (v *overlay) RequestRedraw() {
	if v == nil || v.label == nil || v.render == nil || v.closed {
		return
	}
	frame := v.render()
	if frame == nil {
		return
	}
	pngBytes := images.EncodePNG(frame)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *overlay) SetCursor(tkName string) {
	if v == nil || v.label == nil || v.closed {
		return
	}
	v.label.Configure(Cursor(tkName))
}

func (v *overlay) Run() {
	App.Wait()
}

func (v *overlay) Close() {
	if v == nil || v.closed {
		return
	}
	v.closed = true
	Destroy(App)
}
