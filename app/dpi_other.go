//go:build !windows

package app

// setDPIAware is a no-op outside Windows; X11 and Wayland report
// unscaled pixels to begin with.
func setDPIAware() {}
