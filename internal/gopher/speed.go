package gopher

import "log"

// speed is the current cursor speed multiplier.
func (e *Engine) speed() float64 {
	return e.speeds[e.speedIdx].Value
}

// handleSpeedChange advances the cursor speed table on the speed command's
// down edge, wrapping past the end, and confirms with a haptic pulse.
func (e *Engine) handleSpeedChange() {
	if !e.detect(CmdSpeedChange, e.cfg.SpeedChange).isDownEdge {
		return
	}

	e.speedIdx = (e.speedIdx + 1) % len(e.speeds)
	preset := e.speeds[e.speedIdx]
	log.Printf("Setting speed to %f (%s)...", preset.Value, preset.Name)
	e.pulseVibrate(speedVibrationDuration, speedVibrationIntensity)
}
