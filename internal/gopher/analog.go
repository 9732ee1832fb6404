package gopher

import (
	"math"

	"github.com/ObserverHerb/Gopher360/internal/input"
)

// maxStick is the largest valid thumbstick magnitude.
const maxStick = 32767

// clampStick converts a raw axis value to float, discarding values outside
// the valid signed 16-bit range. Wireless pads occasionally glitch and
// report a huge value even when the stick is centered.
func clampStick(v int32) float64 {
	if v > 32767 || v < -32768 {
		return 0
	}
	return float64(v)
}

// stickMultiplier converts a squared stick magnitude into a per-tick
// movement multiplier: normalize past the deadzone, optionally apply a
// power curve, and scale down to one tick's worth of motion. Returns 0 at
// or below the deadzone.
func stickMultiplier(lengthSq, deadzone, accel float64) float64 {
	norm := (math.Sqrt(lengthSq) - deadzone) / (maxStick - deadzone)
	if norm <= 0 {
		return 0
	}
	if accel > 0.0001 {
		norm = math.Pow(norm, accel)
	}
	return norm / tickRate
}

// handleMouseMovement converts the movement stick into absolute cursor
// positioning. The fractional remainder of each move is carried to the
// next tick so slow movements are not lost to rounding.
func (e *Engine) handleMouseMovement() {
	cursorX, cursorY := e.inj.CursorPos()

	var rawX, rawY int32
	if e.cfg.SwapThumbsticks {
		rawX, rawY = e.sample.ThumbRX, e.sample.ThumbRY
	} else {
		rawX, rawY = e.sample.ThumbLX, e.sample.ThumbLY
	}

	x := float64(cursorX) + e.xRest
	y := float64(cursorY) + e.yRest

	tx := clampStick(rawX)
	ty := clampStick(rawY)
	deadzone := float64(e.cfg.DeadZone)

	lengthSq := tx*tx + ty*ty
	if lengthSq > deadzone*deadzone {
		mult := e.speed() * stickMultiplier(lengthSq, deadzone, e.cfg.AccelerationFactor)
		x += tx * mult
		y -= ty * mult // stick up moves the cursor up
	}

	wholeX := math.Floor(x)
	wholeY := math.Floor(y)
	e.xRest = x - wholeX
	e.yRest = y - wholeY

	e.inj.MoveCursor(int(wholeX), int(wholeY))
}

// handleScrolling converts the other stick into wheel events. Horizontal
// and vertical deltas use the same curve math as cursor movement and are
// emitted as separate events; zero deltas are suppressed.
func (e *Engine) handleScrolling() {
	var tx, ty float64
	if e.cfg.SwapThumbsticks {
		tx = clampStick(e.sample.ThumbLX)
		ty = clampStick(e.sample.ThumbLY)
	} else {
		tx = clampStick(e.sample.ThumbRX)
		ty = clampStick(e.sample.ThumbRY)
	}

	deadzone := float64(e.cfg.ScrollDeadZone)
	if math.Sqrt(tx*tx+ty*ty) <= deadzone {
		return
	}

	if dx := int32(tx * stickMultiplier(tx*tx, deadzone, 0) * e.cfg.ScrollSpeed); dx != 0 {
		e.inj.Mouse(input.MouseHWheel, dx)
	}
	if dy := int32(ty * stickMultiplier(ty*ty, deadzone, 0) * e.cfg.ScrollSpeed); dy != 0 {
		e.inj.Mouse(input.MouseWheel, dy)
	}
}
