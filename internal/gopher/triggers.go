package gopher

// handleTriggers maps the analog triggers onto key sets. Each trigger is
// thresholded independently with its previous state persisted across
// ticks, so a noisy value near the threshold cannot repeat events: exactly
// one key-down per upward crossing and one key-up per downward crossing.
func (e *Engine) handleTriggers() {
	leftDown := e.sample.LeftTrigger > triggerThreshold
	rightDown := e.sample.RightTrigger > triggerThreshold

	if leftDown != e.leftTriggerDown {
		e.leftTriggerDown = leftDown
		if leftDown {
			e.inj.KeyDown(e.cfg.TriggerLeft)
		} else {
			e.inj.KeyUp(e.cfg.TriggerLeft)
		}
	}

	if rightDown != e.rightTriggerDown {
		e.rightTriggerDown = rightDown
		if rightDown {
			e.inj.KeyDown(e.cfg.TriggerRight)
		} else {
			e.inj.KeyUp(e.cfg.TriggerRight)
		}
	}
}
