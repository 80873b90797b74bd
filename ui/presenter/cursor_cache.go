package presenter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// tkCursors maps the interaction layer's logical cursor identities to
// Tk cursor names.
var tkCursors = map[string]string{
	"crosshair": "crosshair",
	"grab":      "hand2",
	"grabbing":  "fleur",
	"pointer":   "hand2",
	"nw-resize": "top_left_corner",
	"ne-resize": "top_right_corner",
	"se-resize": "bottom_right_corner",
	"sw-resize": "bottom_left_corner",
	"n-resize":  "top_side",
	"s-resize":  "bottom_side",
	"e-resize":  "right_side",
	"w-resize":  "left_side",
}

// CursorCache resolves logical cursor identities to Tk cursor names and
// suppresses redundant re-applications. Pointer motion produces a
// resolution per event, so resolved names are memoized in a small LRU.
type CursorCache struct {
	resolved *lru.Cache[string, string]
	last     string
}

// NewCursorCache returns a cache sized for the full cursor vocabulary.
func NewCursorCache() (*CursorCache, error) {
	c, err := lru.New[string, string](len(tkCursors))
	if err != nil {
		return nil, err
	}
	return &CursorCache{resolved: c}, nil
}

// Resolve returns the Tk cursor name for a logical identity. Unknown
// identities fall back to the crosshair.
func (c *CursorCache) Resolve(logical string) string {
	if c == nil {
		return "crosshair"
	}
	if name, ok := c.resolved.Get(logical); ok {
		return name
	}
	name, ok := tkCursors[logical]
	if !ok {
		name = "crosshair"
	}
	c.resolved.Add(logical, name)
	return name
}

// Apply resolves the identity and reports whether the view needs to
// change its cursor: consecutive identical identities return false.
func (c *CursorCache) Apply(logical string) (string, bool) {
	if c == nil {
		return "crosshair", false
	}
	if logical == c.last {
		return "", false
	}
	c.last = logical
	return c.Resolve(logical), true
}
