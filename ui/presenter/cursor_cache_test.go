package presenter

import "testing"

func TestCursorCache_ResolvesKnownIdentities(t *testing.T) {
	c, err := NewCursorCache()
	if err != nil {
		t.Fatalf("NewCursorCache: %v", err)
	}
	cases := map[string]string{
		"crosshair": "crosshair",
		"grabbing":  "fleur",
		"nw-resize": "top_left_corner",
		"e-resize":  "right_side",
	}
	for logical, want := range cases {
		if got := c.Resolve(logical); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", logical, got, want)
		}
	}
}

func TestCursorCache_UnknownFallsBackToCrosshair(t *testing.T) {
	c, err := NewCursorCache()
	if err != nil {
		t.Fatalf("NewCursorCache: %v", err)
	}
	if got := c.Resolve("spiral"); got != "crosshair" {
		t.Fatalf("unknown identity must fall back, got %q", got)
	}
}

func TestCursorCache_ApplyDedupesConsecutive(t *testing.T) {
	c, err := NewCursorCache()
	if err != nil {
		t.Fatalf("NewCursorCache: %v", err)
	}
	if _, changed := c.Apply("grab"); !changed {
		t.Fatalf("first application must report a change")
	}
	if _, changed := c.Apply("grab"); changed {
		t.Fatalf("repeat application must be suppressed")
	}
	name, changed := c.Apply("grabbing")
	if !changed || name != "fleur" {
		t.Fatalf("new identity must apply, got (%q,%v)", name, changed)
	}
}

func TestCursorCache_NilSafe(t *testing.T) {
	var c *CursorCache
	if got := c.Resolve("grab"); got != "crosshair" {
		t.Fatalf("nil cache must fall back, got %q", got)
	}
	if _, changed := c.Apply("grab"); changed {
		t.Fatalf("nil cache must not report changes")
	}
}
