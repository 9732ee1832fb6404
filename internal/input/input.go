// Package input injects keyboard and mouse events into the desktop session.
// On Windows the events go through user32 SendInput as a single batched
// logical input; on other platforms the injector is a recording stub so the
// rest of the program stays exercisable.
package input

// MouseEvent identifies one injected mouse action. Wheel events and the
// extended buttons carry a payload; the rest ignore it.
type MouseEvent int

const (
	MouseLeftDown MouseEvent = iota
	MouseLeftUp
	MouseRightDown
	MouseRightUp
	MouseMiddleDown
	MouseMiddleUp
	MouseWheel
	MouseHWheel
	MouseXDown
	MouseXUp
)

// Pseudo key codes recorded while a mouse button is held, so a bulk release
// can route each one back to the matching mouse-up event. Values follow the
// VK_LBUTTON family.
const (
	KeyLeftButton   uint16 = 0x01
	KeyRightButton  uint16 = 0x02
	KeyMiddleButton uint16 = 0x04
)
