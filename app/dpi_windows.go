//go:build windows

package app

import "golang.org/x/sys/windows"

var (
	modUser32              = windows.NewLazySystemDLL("user32.dll")
	procSetProcessDPIAware = modUser32.NewProc("SetProcessDPIAware")
)

// setDPIAware opts out of DWM scaling so captured pixels and overlay
// coordinates agree on high-DPI displays. Must run before any window is
// created.
func setDPIAware() {
	_, _, _ = procSetProcessDPIAware.Call()
}
