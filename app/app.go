package app

import (
	"fmt"
	"log/slog"
	"time"

	"golang.design/x/clipboard"

	"snipsel/config"
	"snipsel/debug"
	"snipsel/domain/capture"
	"snipsel/domain/selection"
	"snipsel/storage"
	"snipsel/ui/view"
)

const debugLogInterval = 2 * time.Second

// App runs one interactive capture session: grab the screen, let the
// user select a region on the fullscreen overlay, then export the crop
// to the clipboard or a file.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	c      *Container

	clipboardOK bool
	exported    bool
}

// New captures the screen and assembles the session.
func New(cfg *config.Config, logger *slog.Logger, regions []selection.Rect) (*App, error) {
	setDPIAware()

	frame, err := capture.Grab()
	if err != nil {
		return nil, fmt.Errorf("session start: %w", err)
	}
	logger.Info("screen captured",
		slog.Int("width", frame.Width),
		slog.Int("height", frame.Height),
		slog.Int("regions", len(regions)),
	)

	a := &App{cfg: cfg, logger: logger}
	c, err := BuildContainer(cfg, logger, frame, regions, a.selectionChanged)
	if err != nil {
		return nil, err
	}
	a.c = c
	return a, nil
}

// Start builds the overlay window and blocks until the session ends.
func (a *App) Start() error {
	if err := clipboard.Init(); err != nil {
		a.logger.Warn("clipboard unavailable, copy actions will save instead", slog.Any("error", err))
	} else {
		a.clipboardOK = true
	}
	if a.cfg.Debug {
		debug.StartGoroutineLogger(debugLogInterval, a.logger)
		debug.StartMemLogger(debugLogInterval, a.logger)
	}

	p := a.c.Presenter
	a.c.Overlay.Build(view.OverlayHandlers{
		OnPress:     p.PointerPressed,
		OnDrag:      p.PointerDragged,
		OnRelease:   p.PointerReleased,
		OnMove:      p.PointerMoved,
		OnEnter:     p.PointerEntered,
		OnLeave:     p.PointerLeft,
		OnCancel:    a.cancel,
		OnConfirm:   a.confirm,
		OnSelectAll: p.SelectAll,
		OnCopy:      func() { a.export(true) },
		OnSave:      func() { a.export(false) },
	})
	a.c.Overlay.Run()
	return nil
}

func (a *App) selectionChanged(region selection.CropRegion, valid bool) {
	a.logger.Debug("selection changed",
		slog.Int("x", region.X), slog.Int("y", region.Y),
		slog.Int("width", region.Width), slog.Int("height", region.Height),
		slog.Bool("valid", valid),
	)
}

func (a *App) confirm() {
	a.export(a.cfg.CopyOnConfirm)
}

// export crops the selection and writes it to the clipboard or disk,
// then ends the session. Invalid selections are ignored so a stray
// Enter cannot produce an unusable capture.
func (a *App) export(toClipboard bool) {
	if a.exported || !a.c.Selection.HasValidSelection() {
		return
	}
	region, ok := a.c.Selection.CropRegion()
	if !ok {
		return
	}
	data, err := a.c.Frame.Crop(capture.Region(region))
	if err != nil {
		a.logger.Error("crop failed", slog.Any("error", err))
		return
	}

	if toClipboard && a.clipboardOK {
		clipboard.Write(clipboard.FmtImage, data)
		a.logger.Info("selection copied to clipboard",
			slog.Int("width", region.Width), slog.Int("height", region.Height))
	} else {
		path, err := a.save(data)
		if err != nil {
			a.logger.Error("save failed", slog.Any("error", err))
			return
		}
		a.logger.Info("selection saved",
			slog.String("path", path),
			slog.Int("width", region.Width), slog.Int("height", region.Height))
	}
	a.exported = true
	a.c.Overlay.Close()
}

func (a *App) save(data []byte) (string, error) {
	return storage.Write(a.cfg.OutputDir, data, time.Now())
}

func (a *App) cancel() {
	a.logger.Info("session cancelled")
	a.c.Overlay.Close()
}
