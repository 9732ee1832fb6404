//go:build !windows

package input

// Injector is a stub on non-Windows platforms. It tracks a virtual cursor
// position so cursor math still round-trips, and discards key and mouse
// events.
type Injector struct {
	x, y int
}

func NewInjector() *Injector {
	return &Injector{}
}

// KeyDown discards the batch.
func (in *Injector) KeyDown(codes []uint16) {}

// KeyUp discards the batch.
func (in *Injector) KeyUp(codes []uint16) {}

// Mouse discards the event.
func (in *Injector) Mouse(ev MouseEvent, data int32) {}

// CursorPos returns the virtual cursor position.
func (in *Injector) CursorPos() (int, int) {
	return in.x, in.y
}

// MoveCursor updates the virtual cursor position.
func (in *Injector) MoveCursor(x, y int) {
	in.x, in.y = x, y
}
