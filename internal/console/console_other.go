//go:build !windows

// Package console manipulates the process console window and other
// top-level windows. On non-Windows platforms every operation is a no-op;
// window toggling only exists on the Windows desktop.
package console

// Manager is a stub window controller.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetConsoleVisible is a no-op.
func (m *Manager) SetConsoleVisible(visible bool) {}

// FindWindow never finds a window.
func (m *Manager) FindWindow(title string) (uintptr, bool) {
	return 0, false
}

// IsMinimized always reports false.
func (m *Manager) IsMinimized(handle uintptr) bool {
	return false
}

// Restore is a no-op.
func (m *Manager) Restore(handle uintptr) {}

// Minimize is a no-op.
func (m *Manager) Minimize(handle uintptr) {}
