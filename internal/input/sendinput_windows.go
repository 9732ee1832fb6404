//go:build windows

package input

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procSendInput    = user32.NewProc("SendInput")
	procGetCursorPos = user32.NewProc("GetCursorPos")
	procSetCursorPos = user32.NewProc("SetCursorPos")
)

const (
	inputMouse    = 0
	inputKeyboard = 1

	keyEventKeyUp = 0x0002

	mouseEventLeftDown   = 0x0002
	mouseEventLeftUp     = 0x0004
	mouseEventRightDown  = 0x0008
	mouseEventRightUp    = 0x0010
	mouseEventMiddleDown = 0x0020
	mouseEventMiddleUp   = 0x0040
	mouseEventXDown      = 0x0080
	mouseEventXUp        = 0x0100
	mouseEventWheel      = 0x0800
	mouseEventHWheel     = 0x1000
)

// keyboardInput mirrors the INPUT struct with the KEYBDINPUT union member,
// padded out to the full union size.
type keyboardInput struct {
	inputType uint32
	_         uint32
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	_         uint32
	extraInfo uintptr
	_         [8]byte
}

// mouseInput mirrors the INPUT struct with the MOUSEINPUT union member.
type mouseInput struct {
	inputType uint32
	_         uint32
	dx        int32
	dy        int32
	mouseData uint32
	flags     uint32
	time      uint32
	_         uint32
	extraInfo uintptr
}

var mouseEventFlags = map[MouseEvent]uint32{
	MouseLeftDown:   mouseEventLeftDown,
	MouseLeftUp:     mouseEventLeftUp,
	MouseRightDown:  mouseEventRightDown,
	MouseRightUp:    mouseEventRightUp,
	MouseMiddleDown: mouseEventMiddleDown,
	MouseMiddleUp:   mouseEventMiddleUp,
	MouseWheel:      mouseEventWheel,
	MouseHWheel:     mouseEventHWheel,
	MouseXDown:      mouseEventXDown,
	MouseXUp:        mouseEventXUp,
}

// Injector injects batched keyboard and mouse events via SendInput.
type Injector struct{}

func NewInjector() *Injector {
	return &Injector{}
}

// KeyDown presses all the given virtual key codes as one batch.
func (in *Injector) KeyDown(codes []uint16) {
	in.sendKeys(codes, 0)
}

// KeyUp releases all the given virtual key codes as one batch.
func (in *Injector) KeyUp(codes []uint16) {
	in.sendKeys(codes, keyEventKeyUp)
}

func (in *Injector) sendKeys(codes []uint16, flags uint32) {
	if len(codes) == 0 {
		return
	}
	events := make([]keyboardInput, 0, len(codes))
	for _, code := range codes {
		events = append(events, keyboardInput{
			inputType: inputKeyboard,
			vk:        code,
			flags:     flags,
		})
	}
	procSendInput.Call(uintptr(len(events)), uintptr(unsafe.Pointer(&events[0])), unsafe.Sizeof(events[0]))
}

// Mouse emits one mouse event. The payload is only attached for event
// kinds that define one (wheel deltas and extended buttons).
func (in *Injector) Mouse(ev MouseEvent, data int32) {
	flags, ok := mouseEventFlags[ev]
	if !ok {
		return
	}
	event := mouseInput{inputType: inputMouse, flags: flags}
	switch ev {
	case MouseWheel, MouseHWheel, MouseXDown, MouseXUp:
		event.mouseData = uint32(data)
	}
	procSendInput.Call(1, uintptr(unsafe.Pointer(&event)), unsafe.Sizeof(event))
}

// CursorPos returns the current cursor position in screen coordinates.
func (in *Injector) CursorPos() (int, int) {
	var pt struct{ x, y int32 }
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	return int(pt.x), int(pt.y)
}

// MoveCursor places the cursor at absolute screen coordinates.
func (in *Injector) MoveCursor(x, y int) {
	procSetCursorPos.Call(uintptr(x), uintptr(y))
}
