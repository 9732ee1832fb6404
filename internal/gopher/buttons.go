package gopher

// Command identifies one logical controller-driven action. Per-command
// debounce state is looked up by Command rather than by raw bitmask value.
type Command int

const (
	CmdMouseLeft Command = iota
	CmdMouseRight
	CmdMouseMiddle
	CmdHide
	CmdDisable
	CmdVibrationToggle
	CmdSpeedChange
	CmdOSK
	CmdDpadUp
	CmdDpadDown
	CmdDpadLeft
	CmdDpadRight
	CmdStart
	CmdBack
	CmdLeftThumb
	CmdRightThumb
	CmdLeftShoulder
	CmdRightShoulder
	CmdA
	CmdB
	CmdX
	CmdY
	numCommands
)

// buttonState is the debounced per-tick state of one Command. The zero
// value means "previously up", so commands need no explicit initialization.
type buttonState struct {
	lastDown    bool
	downTicks   int
	isDownEdge  bool
	isUpEdge    bool
	isLongPress bool
}

// detect updates the state for cmd from the sampled button bitmask and
// returns it. The edge flags are pulses: they hold for exactly the tick of
// the transition and are cleared at the start of every update. A zero mask
// never reads as down.
func (e *Engine) detect(cmd Command, mask uint16) *buttonState {
	bs := &e.buttons[cmd]
	bs.isDownEdge = false
	bs.isUpEdge = false

	isDown := mask != 0 && e.sample.Buttons&mask == mask

	switch {
	case isDown && !bs.lastDown:
		bs.isDownEdge = true
		bs.downTicks = 0
		bs.isLongPress = false
	case isDown && bs.lastDown:
		bs.downTicks++
		if bs.downTicks*tickIntervalMs > longPressMs {
			bs.isLongPress = true
		}
	case !isDown && bs.lastDown:
		bs.isUpEdge = true
		bs.isLongPress = false
	}

	bs.lastDown = isDown
	return bs
}
