// Package config loads the mapping configuration. Every key has a
// documented fallback, so a missing or unparsable value never fails the
// load; it falls back to the default for that field.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultDeadZone       = 6000
	defaultScrollDeadZone = 5000
	defaultScrollSpeed    = 0.1

	// Cursor speed presets outside this range are discarded.
	speedMin = 0.0001
	speedMax = 1.0
)

// SpeedPreset is one named cursor-speed multiplier.
type SpeedPreset struct {
	Name  string
	Value float64
}

// DefaultSpeeds returns the built-in cursor speed table, used when the
// configuration defines no valid presets.
func DefaultSpeeds() []SpeedPreset {
	return []SpeedPreset{
		{Name: "ULTRALOW", Value: 0.005},
		{Name: "LOW", Value: 0.015},
		{Name: "MED", Value: 0.025},
		{Name: "HIGH", Value: 0.004},
	}
}

// Config is the full mapping configuration, read-only after load.
//
// Command fields hold a controller button bitmask (0 = unbound, feature
// off). Key list fields hold the virtual key codes injected for a
// controller button; an empty list leaves the button unmapped.
type Config struct {
	MouseLeft        uint16
	MouseRight       uint16
	MouseMiddle      uint16
	Hide             uint16
	Disable          uint16
	DisableVibration uint16
	SpeedChange      uint16
	OSK              uint16

	DpadUp        []uint16
	DpadDown      []uint16
	DpadLeft      []uint16
	DpadRight     []uint16
	Start         []uint16
	Back          []uint16
	LeftThumb     []uint16
	RightThumb    []uint16
	LeftShoulder  []uint16
	RightShoulder []uint16
	A             []uint16
	B             []uint16
	X             []uint16
	Y             []uint16
	TriggerLeft   []uint16
	TriggerRight  []uint16

	AccelerationFactor float64 // 0 = linear input curve
	DeadZone           int32
	ScrollDeadZone     int32
	ScrollSpeed        float64
	CursorSpeeds       []SpeedPreset
	SwapThumbsticks    bool
}

// Load reads the configuration file at path. The file itself must exist
// and parse; individual keys fall back per field.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v), nil
}

// Default returns the configuration produced by an empty file: every
// command unbound, every fallback applied.
func Default() *Config {
	return fromViper(viper.New())
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		MouseLeft:        code(v, "CONFIG_MOUSE_LEFT"),
		MouseRight:       code(v, "CONFIG_MOUSE_RIGHT"),
		MouseMiddle:      code(v, "CONFIG_MOUSE_MIDDLE"),
		Hide:             code(v, "CONFIG_HIDE"),
		Disable:          code(v, "CONFIG_DISABLE"),
		DisableVibration: code(v, "CONFIG_DISABLE_VIBRATION"),
		SpeedChange:      code(v, "CONFIG_SPEED_CHANGE"),
		OSK:              code(v, "CONFIG_OSK"),

		DpadUp:        codes(v, "GAMEPAD_DPAD_UP"),
		DpadDown:      codes(v, "GAMEPAD_DPAD_DOWN"),
		DpadLeft:      codes(v, "GAMEPAD_DPAD_LEFT"),
		DpadRight:     codes(v, "GAMEPAD_DPAD_RIGHT"),
		Start:         codes(v, "GAMEPAD_START"),
		Back:          codes(v, "GAMEPAD_BACK"),
		LeftThumb:     codes(v, "GAMEPAD_LEFT_THUMB"),
		RightThumb:    codes(v, "GAMEPAD_RIGHT_THUMB"),
		LeftShoulder:  codes(v, "GAMEPAD_LEFT_SHOULDER"),
		RightShoulder: codes(v, "GAMEPAD_RIGHT_SHOULDER"),
		A:             codes(v, "GAMEPAD_A"),
		B:             codes(v, "GAMEPAD_B"),
		X:             codes(v, "GAMEPAD_X"),
		Y:             codes(v, "GAMEPAD_Y"),
		TriggerLeft:   codes(v, "GAMEPAD_TRIGGER_LEFT"),
		TriggerRight:  codes(v, "GAMEPAD_TRIGGER_RIGHT"),

		AccelerationFactor: v.GetFloat64("ACCELERATION_FACTOR"),
		DeadZone:           v.GetInt32("DEAD_ZONE"),
		ScrollDeadZone:     v.GetInt32("SCROLL_DEAD_ZONE"),
		ScrollSpeed:        v.GetFloat64("SCROLL_SPEED"),
		CursorSpeeds:       parseSpeeds(v.GetString("CURSOR_SPEED")),
		SwapThumbsticks:    v.GetBool("SWAP_THUMBSTICKS"),
	}

	// Zero means "use the built-in default" for these fields; a zero dead
	// zone would make resting stick noise move the cursor.
	if cfg.DeadZone == 0 {
		cfg.DeadZone = defaultDeadZone
	}
	if cfg.ScrollDeadZone == 0 {
		cfg.ScrollDeadZone = defaultScrollDeadZone
	}
	if cfg.ScrollSpeed < 1e-5 {
		cfg.ScrollSpeed = defaultScrollSpeed
	}
	if len(cfg.CursorSpeeds) == 0 {
		cfg.CursorSpeeds = DefaultSpeeds()
	}
	return cfg
}

// code returns the first code bound to key, or 0 when unbound.
func code(v *viper.Viper, key string) uint16 {
	if cs := codes(v, key); len(cs) > 0 {
		return cs[0]
	}
	return 0
}

// codes reads a key as a list of numeric codes. Accepts a native array, a
// single number, or a string of whitespace/comma separated values; 0x hex
// syntax is allowed. Unparsable entries are skipped.
func codes(v *viper.Viper, key string) []uint16 {
	raw := v.Get(key)
	if raw == nil {
		return nil
	}
	var out []uint16
	switch val := raw.(type) {
	case []any:
		for _, item := range val {
			if c, ok := toCode(item); ok {
				out = append(out, c)
			}
		}
	case string:
		fields := strings.FieldsFunc(val, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			if c, ok := parseCode(f); ok {
				out = append(out, c)
			}
		}
	default:
		if c, ok := toCode(val); ok {
			out = append(out, c)
		}
	}
	return out
}

func toCode(v any) (uint16, bool) {
	switch n := v.(type) {
	case int:
		return intCode(int64(n))
	case int32:
		return intCode(int64(n))
	case int64:
		return intCode(n)
	case uint64:
		if n > 0xFFFF {
			return 0, false
		}
		return uint16(n), true
	case float64:
		return intCode(int64(n))
	case string:
		return parseCode(n)
	}
	return 0, false
}

func intCode(n int64) (uint16, bool) {
	if n <= 0 || n > 0xFFFF {
		return 0, false
	}
	return uint16(n), true
}

func parseCode(s string) (uint16, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint16(n), true
}

// parseSpeeds parses the CURSOR_SPEED list: comma-separated entries, each
// either name=value or a bare value that gets a positional name.
func parseSpeeds(s string) []SpeedPreset {
	var presets []SpeedPreset
	position := 1
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name := ""
		valueStr := entry
		if eq := strings.IndexByte(entry, '='); eq >= 0 {
			name = strings.TrimSpace(entry[:eq])
			valueStr = entry[eq+1:]
		} else {
			name = strconv.Itoa(position)
			position++
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
		if err != nil {
			continue
		}
		if value > speedMin && value <= speedMax {
			presets = append(presets, SpeedPreset{Name: name, Value: value})
		}
	}
	return presets
}
