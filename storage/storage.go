package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Screenshot files are named screenshot-YYYY-MM-DD-HH-MM-SS.png with a
// numeric suffix when the second already has a file.

const maxSuffix = 1000

// DefaultDir returns the directory screenshots are saved to when no
// output directory is configured: the XDG Pictures directory, or the
// home directory if the user has no Pictures entry.
func DefaultDir() string {
	if xdg.UserDirs.Pictures != "" {
		return xdg.UserDirs.Pictures
	}
	return xdg.Home
}

// NextPath returns a non-existing screenshot path under dir, creating
// the directory if needed. An empty dir selects DefaultDir.
func NextPath(dir string, now time.Time) (string, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := now.Format("screenshot-2006-01-02-15-04-05")
	path := filepath.Join(dir, base+".png")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}
	for i := 1; i < maxSuffix; i++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.png", base, i))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	// Every candidate taken within one second; fall back to nanoseconds.
	return filepath.Join(dir, fmt.Sprintf("%s-%d.png", base, now.Nanosecond())), nil
}

// Write saves PNG data to a fresh screenshot path under dir and returns
// the path written.
func Write(dir string, data []byte, now time.Time) (string, error) {
	path, err := NextPath(dir, now)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
