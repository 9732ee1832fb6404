package gopher

import (
	"log"

	"github.com/ObserverHerb/Gopher360/internal/input"
)

// handleDisable flips global mapping enablement on the disable command's
// down edge. Entering the disabled state releases everything currently
// held so no key stays physically down from the OS's perspective.
func (e *Engine) handleDisable() {
	if !e.detect(CmdDisable, e.cfg.Disable).isDownEdge {
		return
	}

	e.disabled = !e.disabled
	if e.disabled {
		e.releasePressed()
		log.Println("Mapping disabled")
		e.pulseVibrate(toggleVibrationDuration, disableVibrationIntensity)
	} else {
		log.Println("Mapping enabled")
		e.pulseVibrate(toggleVibrationDuration, enableVibrationIntensity)
	}
}

// releasePressed emits exactly one release per held code. Mouse pseudo
// codes route to mouse-up events; the remainder go out as a single batched
// key-up.
func (e *Engine) releasePressed() {
	var keys []uint16
	for _, code := range e.pressed.drain() {
		switch code {
		case input.KeyLeftButton:
			e.inj.Mouse(input.MouseLeftUp, 0)
		case input.KeyRightButton:
			e.inj.Mouse(input.MouseRightUp, 0)
		case input.KeyMiddleButton:
			e.inj.Mouse(input.MouseMiddleUp, 0)
		default:
			keys = append(keys, code)
		}
	}
	if len(keys) > 0 {
		e.inj.KeyUp(keys)
	}
}

// handleVibrationToggle flips haptic feedback on the toggle command's down
// edge, then stalls the loop for a moment so a held button cannot flip it
// back immediately.
func (e *Engine) handleVibrationToggle() {
	if !e.detect(CmdVibrationToggle, e.cfg.DisableVibration).isDownEdge {
		return
	}

	e.vibrationDisabled = !e.vibrationDisabled
	if e.vibrationDisabled {
		log.Println("Vibration disabled")
	} else {
		log.Println("Vibration enabled")
	}
	e.clk.Sleep(vibrationToggleHold)
}
