package gopher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ObserverHerb/Gopher360/internal/gamepad"
)

// press runs the detector for one tick with the given buttons held.
func press(e *Engine, cmd Command, mask, held uint16) *buttonState {
	e.sample = gamepad.State{Buttons: held}
	return e.detect(cmd, mask)
}

func TestDetectPressHoldRelease(t *testing.T) {
	tests := []struct {
		name      string
		holdTicks int
		longPress bool
	}{
		{"tap", 0, false},
		{"short hold", 5, false},
		{"just under long press", 12, false}, // 12 * 16ms = 192ms
		{"long press", 13, true},             // 13 * 16ms = 208ms
		{"extended hold", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _, _, _ := newTestEngine(testConfig())

			downEdges, upEdges := 0, 0
			sawLongPress := false

			bs := press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
			if bs.isDownEdge {
				downEdges++
			}
			for i := 0; i < tt.holdTicks; i++ {
				bs = press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
				assert.False(t, bs.isDownEdge)
				assert.False(t, bs.isUpEdge)
				if bs.isLongPress {
					sawLongPress = true
				}
			}
			bs = press(e, CmdA, gamepad.ButtonA, 0)
			if bs.isUpEdge {
				upEdges++
			}

			assert.Equal(t, 1, downEdges)
			assert.Equal(t, 1, upEdges)
			assert.Equal(t, tt.longPress, sawLongPress)
			assert.False(t, bs.isLongPress, "long press must clear on release")
		})
	}
}

func TestDetectEdgesArePulses(t *testing.T) {
	e, _, _, _, _ := newTestEngine(testConfig())

	bs := press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
	assert.True(t, bs.isDownEdge)

	bs = press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
	assert.False(t, bs.isDownEdge)

	bs = press(e, CmdA, gamepad.ButtonA, 0)
	assert.True(t, bs.isUpEdge)

	bs = press(e, CmdA, gamepad.ButtonA, 0)
	assert.False(t, bs.isUpEdge)
}

func TestDetectSteadyStateEmitsNothing(t *testing.T) {
	e, _, _, _, _ := newTestEngine(testConfig())

	for i := 0; i < 50; i++ {
		bs := press(e, CmdB, gamepad.ButtonB, 0)
		assert.False(t, bs.isDownEdge)
		assert.False(t, bs.isUpEdge)
		assert.False(t, bs.isLongPress)
	}
}

func TestDetectZeroMaskNeverDown(t *testing.T) {
	e, _, _, _, _ := newTestEngine(testConfig())

	bs := press(e, CmdHide, 0, 0xFFFF)
	assert.False(t, bs.isDownEdge)
	assert.False(t, bs.lastDown)
}

func TestDetectCombinationMask(t *testing.T) {
	e, _, _, _, _ := newTestEngine(testConfig())
	combo := gamepad.ButtonStart | gamepad.ButtonBack

	// A partial chord does not count as down.
	bs := press(e, CmdDisable, combo, gamepad.ButtonStart)
	assert.False(t, bs.isDownEdge)

	bs = press(e, CmdDisable, combo, combo)
	assert.True(t, bs.isDownEdge)
}

func TestDetectRepressResetsLongPress(t *testing.T) {
	e, _, _, _, _ := newTestEngine(testConfig())

	for i := 0; i < 20; i++ {
		press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
	}
	assert.True(t, e.buttons[CmdA].isLongPress)

	press(e, CmdA, gamepad.ButtonA, 0)
	bs := press(e, CmdA, gamepad.ButtonA, gamepad.ButtonA)
	assert.True(t, bs.isDownEdge)
	assert.False(t, bs.isLongPress)
	assert.Zero(t, bs.downTicks)
}
