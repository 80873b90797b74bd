package render

import (
	"fmt"

	"snipsel/domain/selection"
	"snipsel/ui/theme"
)

// Status line metrics, matching the basicfont face the rasterizer
// draws with.
const (
	statusCharWidth  = 7.0
	statusLineHeight = 13.0
	statusPadding    = 4.0
	statusGap        = 8.0
)

// statusOps emits the size-and-keys hint line under the selection once
// it reaches the exportable minimum. The line moves above the rect
// when the bottom edge has no room and clamps on-canvas horizontally.
func statusOps(sel *selection.Selection, screenW, screenH float64) []Op {
	if !sel.HasValidSelection() {
		return nil
	}
	region, ok := sel.CropRegion()
	if !ok {
		return nil
	}
	rect, _ := sel.Rect()
	n := rect.Normalized()

	text := fmt.Sprintf("%d x %d   Enter confirm   Esc cancel", region.Width, region.Height)
	w := float64(len(text))*statusCharWidth + 2*statusPadding
	h := statusLineHeight + 2*statusPadding

	x := clampFloat(n.X+(n.Width-w)/2, 0, screenW-w)
	y := n.Bottom() + statusGap
	if y+h > screenH {
		y = n.Y - statusGap - h
	}
	if y < 0 {
		y = 0
	}

	return []Op{
		FillRect{X: x, Y: y, W: w, H: h, Color: theme.StatusBack},
		Text{X: x + statusPadding, Y: y + statusPadding, Text: text, Color: theme.StatusText},
	}
}
