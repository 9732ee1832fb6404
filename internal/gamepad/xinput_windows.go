//go:build windows

package gamepad

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	xinput       = windows.NewLazySystemDLL("xinput1_4.dll")
	procGetState = xinput.NewProc("XInputGetState")
	procSetState = xinput.NewProc("XInputSetState")
)

type xinputGamepad struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

type xinputState struct {
	PacketNumber uint32
	Gamepad      xinputGamepad
}

type xinputVibration struct {
	LeftMotorSpeed  uint16
	RightMotorSpeed uint16
}

// Device samples one XInput user slot.
type Device struct {
	user uint32
}

// Open returns a device for the given user slot (0-3). The controller does
// not need to be connected yet; State reports an error until it is.
func Open(user int) (*Device, error) {
	if user < 0 || user > 3 {
		return nil, fmt.Errorf("invalid xinput user slot: %d", user)
	}
	return &Device{user: uint32(user)}, nil
}

// Find probes all four user slots and returns the first one with a
// connected controller, falling back to slot 0 when none is connected yet.
func Find() *Device {
	for user := uint32(0); user < 4; user++ {
		d := &Device{user: user}
		if _, err := d.State(); err == nil {
			return d
		}
	}
	return &Device{user: 0}
}

// State reads the current controller snapshot. Returns an error when the
// controller is not connected.
func (d *Device) State() (State, error) {
	var st xinputState
	ret, _, _ := procGetState.Call(uintptr(d.user), uintptr(unsafe.Pointer(&st)))
	if ret != 0 {
		return State{}, fmt.Errorf("xinput slot %d not connected (code %d)", d.user, ret)
	}
	g := st.Gamepad
	return State{
		Buttons:      g.Buttons,
		LeftTrigger:  g.LeftTrigger,
		RightTrigger: g.RightTrigger,
		ThumbLX:      int32(g.ThumbLX),
		ThumbLY:      int32(g.ThumbLY),
		ThumbRX:      int32(g.ThumbRX),
		ThumbRY:      int32(g.ThumbRY),
	}, nil
}

// Vibrate sets the rumble motor speeds. Zero for both motors stops the
// vibration.
func (d *Device) Vibrate(left, right uint16) {
	vib := xinputVibration{LeftMotorSpeed: left, RightMotorSpeed: right}
	procSetState.Call(uintptr(d.user), uintptr(unsafe.Pointer(&vib)))
}
