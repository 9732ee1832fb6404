//go:build !windows

package gamepad

import (
	"errors"
	"fmt"
)

var errUnsupported = errors.New("xinput is only available on windows")

// Device samples one XInput user slot. On non-Windows platforms it is a
// stub that never reports a connected controller.
type Device struct {
	user uint32
}

// Open returns a device for the given user slot (0-3).
func Open(user int) (*Device, error) {
	if user < 0 || user > 3 {
		return nil, fmt.Errorf("invalid xinput user slot: %d", user)
	}
	return &Device{user: uint32(user)}, nil
}

// Find returns a device for slot 0.
func Find() *Device {
	return &Device{user: 0}
}

// State always reports an unavailable controller.
func (d *Device) State() (State, error) {
	return State{}, errUnsupported
}

// Vibrate is a no-op.
func (d *Device) Vibrate(left, right uint16) {}
