// Package gopher is the input-translation core: a fixed-tick state machine
// that converts controller samples into injected mouse and keyboard events.
// All per-command state is owned by one Engine instance; the collaborators
// that touch the OS (sampler, injector, window control) come in as
// interfaces so the whole engine runs against fakes in tests.
package gopher

import (
	"context"
	"log"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ObserverHerb/Gopher360/internal/config"
	"github.com/ObserverHerb/Gopher360/internal/gamepad"
	"github.com/ObserverHerb/Gopher360/internal/input"
)

const (
	tickIntervalMs = 16
	tickInterval   = tickIntervalMs * time.Millisecond
	tickRate       = 1000.0 / tickIntervalMs

	longPressMs = 200

	// Analog trigger values above this count as pressed.
	triggerThreshold = 30

	oskWindowTitle = "On-Screen Keyboard"

	toggleVibrationDuration   = 400 * time.Millisecond
	disableVibrationIntensity = 10000
	enableVibrationIntensity  = 65000
	speedVibrationDuration    = 450 * time.Millisecond
	speedVibrationIntensity   = 65000

	// How long the vibration-toggle handler stalls the loop so holding the
	// button does not flip the setting every tick.
	vibrationToggleHold = time.Second
)

// Controller supplies one state sample per tick and drives the rumble
// motors. Sampling must be side-effect free.
type Controller interface {
	State() (gamepad.State, error)
	Vibrate(left, right uint16)
}

// Injector applies keyboard and mouse events as OS input. Key batches are
// delivered as a single logical input event.
type Injector interface {
	KeyDown(codes []uint16)
	KeyUp(codes []uint16)
	Mouse(ev input.MouseEvent, data int32)
	CursorPos() (x, y int)
	MoveCursor(x, y int)
}

// WindowController toggles console visibility and manipulates other
// top-level windows.
type WindowController interface {
	SetConsoleVisible(visible bool)
	FindWindow(title string) (handle uintptr, found bool)
	IsMinimized(handle uintptr) bool
	Restore(handle uintptr)
	Minimize(handle uintptr)
}

// keyMapping binds one controller button mask to the key codes it injects.
type keyMapping struct {
	cmd  Command
	mask uint16
	keys []uint16
}

// Engine owns all mapping state and runs the per-tick translation.
type Engine struct {
	cfg *config.Config
	pad Controller
	inj Injector
	win WindowController
	clk clock.Clock

	sample  gamepad.State
	buttons [numCommands]buttonState
	pressed pressedKeys
	keyMaps []keyMapping

	// Fractional cursor motion carried between ticks so slow movements
	// are not lost to rounding.
	xRest, yRest float64

	speeds   []config.SpeedPreset
	speedIdx int

	disabled          bool
	vibrationDisabled bool
	hidden            bool
	offline           bool

	leftTriggerDown  bool
	rightTriggerDown bool
}

// New builds an Engine around the given configuration and collaborators.
func New(cfg *config.Config, pad Controller, inj Injector, win WindowController, clk clock.Clock) *Engine {
	speeds := cfg.CursorSpeeds
	if len(speeds) == 0 {
		speeds = config.DefaultSpeeds()
	}
	return &Engine{
		cfg:    cfg,
		pad:    pad,
		inj:    inj,
		win:    win,
		clk:    clk,
		speeds: speeds,
		keyMaps: []keyMapping{
			{CmdDpadUp, gamepad.ButtonDpadUp, cfg.DpadUp},
			{CmdDpadDown, gamepad.ButtonDpadDown, cfg.DpadDown},
			{CmdDpadLeft, gamepad.ButtonDpadLeft, cfg.DpadLeft},
			{CmdDpadRight, gamepad.ButtonDpadRight, cfg.DpadRight},
			{CmdStart, gamepad.ButtonStart, cfg.Start},
			{CmdBack, gamepad.ButtonBack, cfg.Back},
			{CmdLeftThumb, gamepad.ButtonLeftThumb, cfg.LeftThumb},
			{CmdRightThumb, gamepad.ButtonRightThumb, cfg.RightThumb},
			{CmdLeftShoulder, gamepad.ButtonLeftShoulder, cfg.LeftShoulder},
			{CmdRightShoulder, gamepad.ButtonRightShoulder, cfg.RightShoulder},
			{CmdA, gamepad.ButtonA, cfg.A},
			{CmdB, gamepad.ButtonB, cfg.B},
			{CmdX, gamepad.ButtonX, cfg.X},
			{CmdY, gamepad.ButtonY, cfg.Y},
		},
	}
}

// Run drives the fixed-tick loop until ctx is cancelled. One full
// sample→map→inject cycle completes before the next tick begins; the only
// other suspension points are the blocking vibration pulses.
func (e *Engine) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		e.clk.Sleep(tickInterval)

		sample, err := e.pad.State()
		if err != nil {
			if !e.offline {
				log.Printf("Controller unavailable: %v", err)
				e.offline = true
			}
			continue
		}
		if e.offline {
			log.Println("Controller connected")
			e.offline = false
		}
		e.Update(sample)
	}
}

// Update runs one mapping tick against a single controller sample. The
// handler order matches the vibration feedback interleaving the original
// behavior depends on; the mappings themselves are order-independent.
func (e *Engine) Update(sample gamepad.State) {
	e.sample = sample

	e.handleDisable()
	if e.disabled {
		// Fail-safe: while disabled nothing else runs, so no mapping can
		// inject input until the disable command re-enables it.
		return
	}

	e.handleVibrationToggle()
	e.handleMouseMovement()
	e.handleScrolling()

	if e.cfg.MouseLeft != 0 {
		e.mapMouseClick(CmdMouseLeft, e.cfg.MouseLeft, input.MouseLeftDown, input.MouseLeftUp, input.KeyLeftButton)
	}
	if e.cfg.MouseRight != 0 {
		e.mapMouseClick(CmdMouseRight, e.cfg.MouseRight, input.MouseRightDown, input.MouseRightUp, input.KeyRightButton)
	}
	if e.cfg.MouseMiddle != 0 {
		e.mapMouseClick(CmdMouseMiddle, e.cfg.MouseMiddle, input.MouseMiddleDown, input.MouseMiddleUp, input.KeyMiddleButton)
	}

	if e.cfg.Hide != 0 && e.detect(CmdHide, e.cfg.Hide).isDownEdge {
		e.toggleConsole()
	}
	if e.cfg.OSK != 0 && e.detect(CmdOSK, e.cfg.OSK).isDownEdge {
		e.toggleOnScreenKeyboard()
	}

	e.handleSpeedChange()
	e.handleTriggers()

	for _, m := range e.keyMaps {
		if len(m.keys) == 0 {
			continue
		}
		e.mapKeyboard(m.cmd, m.mask, m.keys)
	}
}

// mapKeyboard presses the mapped keys on the command's down edge and
// releases them on the up edge, tracking them for the disable flush.
func (e *Engine) mapKeyboard(cmd Command, mask uint16, keys []uint16) {
	bs := e.detect(cmd, mask)
	if bs.isDownEdge {
		e.inj.KeyDown(keys)
		for _, k := range keys {
			e.pressed.add(k)
		}
	}
	if bs.isUpEdge {
		e.inj.KeyUp(keys)
		for _, k := range keys {
			e.pressed.remove(k)
		}
	}
}

// mapMouseClick is mapKeyboard for a mouse button: the pseudo key code
// stands in for the button in the pressed set.
func (e *Engine) mapMouseClick(cmd Command, mask uint16, down, up input.MouseEvent, pseudo uint16) {
	bs := e.detect(cmd, mask)
	if bs.isDownEdge {
		e.inj.Mouse(down, 0)
		e.pressed.add(pseudo)
	}
	if bs.isUpEdge {
		e.inj.Mouse(up, 0)
		e.pressed.remove(pseudo)
	}
}

// pulseVibrate plays one blocking haptic pulse. The loop deliberately
// stalls for the duration; controller changes during the pulse are not
// observed.
func (e *Engine) pulseVibrate(d time.Duration, intensity uint16) {
	if e.vibrationDisabled {
		return
	}
	e.pad.Vibrate(intensity, intensity)
	e.clk.Sleep(d)
	e.pad.Vibrate(0, 0)
}
