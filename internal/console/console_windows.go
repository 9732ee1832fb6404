//go:build windows

// Package console manipulates the process console window and other
// top-level windows: hiding the console while the mapper runs in the
// background, and minimizing/restoring the on-screen keyboard.
package console

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procShowWindow       = user32.NewProc("ShowWindow")
	procFindWindowW      = user32.NewProc("FindWindowW")
	procIsIconic         = user32.NewProc("IsIconic")
)

const (
	swHide     = 0
	swShow     = 5
	swMinimize = 6
	swRestore  = 9
)

// Manager drives window visibility through user32.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetConsoleVisible shows or hides the console window attached to this
// process. A no-op when the process has no console.
func (m *Manager) SetConsoleVisible(visible bool) {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return
	}
	cmd := uintptr(swHide)
	if visible {
		cmd = swShow
	}
	procShowWindow.Call(hwnd, cmd)
}

// FindWindow locates a top-level window by its exact title.
func (m *Manager) FindWindow(title string) (uintptr, bool) {
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, false
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(name)))
	return hwnd, hwnd != 0
}

// IsMinimized reports whether the window is iconic (minimized).
func (m *Manager) IsMinimized(handle uintptr) bool {
	ret, _, _ := procIsIconic.Call(handle)
	return ret != 0
}

// Restore brings a minimized window back to its previous size and position.
func (m *Manager) Restore(handle uintptr) {
	procShowWindow.Call(handle, swRestore)
}

// Minimize minimizes the window.
func (m *Manager) Minimize(handle uintptr) {
	procShowWindow.Call(handle, swMinimize)
}
