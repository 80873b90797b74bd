package selection

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Predefined-region line format: "x1,y1 x2,y2" — two comma-separated
// coordinate pairs split by whitespace, naming opposite corners.

// ParseRect parses one region line. It returns false for malformed
// text or a non-positive width/height; no diagnostics are produced.
func ParseRect(text string) (Rect, bool) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return Rect{}, false
	}
	x1, y1, ok := parsePair(fields[0])
	if !ok {
		return Rect{}, false
	}
	x2, y2, ok := parsePair(fields[1])
	if !ok {
		return Rect{}, false
	}
	width := x2 - x1
	height := y2 - y1
	if width <= 0 || height <= 0 {
		return Rect{}, false
	}
	return NewRect(x1, y1, width, height), true
}

func parsePair(s string) (float64, float64, bool) {
	a, b, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, false
	}
	return x, y, true
}

// ReadRegions consumes a newline-delimited stream of region lines,
// silently skipping malformed or non-positive-area entries. An empty
// or fully malformed stream yields zero regions and no error.
func ReadRegions(r io.Reader) []Rect {
	var regions []Rect
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if rect, ok := ParseRect(sc.Text()); ok {
			regions = append(regions, rect)
		}
	}
	return regions
}
