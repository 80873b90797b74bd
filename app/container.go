package app

import (
	"image"
	"log/slog"

	"snipsel/config"
	"snipsel/domain/capture"
	"snipsel/domain/selection"
	"snipsel/ui/model"
	"snipsel/ui/presenter"
	"snipsel/ui/render"
	"snipsel/ui/view"
)

// Container assembles the selection state, models, presenter and the
// overlay view for one capture session.
type Container struct {
	Config    *config.Config
	Logger    *slog.Logger
	Frame     capture.Frame
	Selection *selection.Selection
	Pointer   *model.OverlayModel
	Cursors   *presenter.CursorCache
	Overlay   view.Overlay
	Presenter *presenter.OverlayPresenter
}

// BuildContainer constructs all components around a captured frame.
// onChanged receives the crop region after every selection mutation.
func BuildContainer(cfg *config.Config, logger *slog.Logger, frame capture.Frame, regions []selection.Rect, onChanged presenter.SelectionChanged) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger, Frame: frame}

	c.Selection = selection.New(float64(frame.Width), float64(frame.Height))
	c.Selection.SetPredefinedRegions(regions)
	c.Pointer = model.NewOverlayModel()

	cursors, err := presenter.NewCursorCache()
	if err != nil {
		return nil, err
	}
	c.Cursors = cursors

	opts := render.Options{
		MagnifierGrid:   cfg.MagnifierGrid,
		MagnifierFactor: cfg.MagnifierFactor,
	}
	c.Overlay = view.NewOverlay(logger, func() *image.RGBA {
		x, y, inside := c.Pointer.Pointer()
		ops := render.BuildFrame(frame.Image, c.Selection, x, y, inside, opts)
		return render.Rasterize(frame.Image, ops)
	})

	c.Presenter = presenter.NewOverlayPresenter(logger, c.Selection, c.Pointer, c.Overlay, cursors, onChanged)
	return c, nil
}
