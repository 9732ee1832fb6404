package gamepad

// Button bitmask values as reported in State.Buttons. These match the
// XInput wButtons layout, which is also the value space the configuration
// file binds commands against.
const (
	ButtonDpadUp        uint16 = 0x0001
	ButtonDpadDown      uint16 = 0x0002
	ButtonDpadLeft      uint16 = 0x0004
	ButtonDpadRight     uint16 = 0x0008
	ButtonStart         uint16 = 0x0010
	ButtonBack          uint16 = 0x0020
	ButtonLeftThumb     uint16 = 0x0040
	ButtonRightThumb    uint16 = 0x0080
	ButtonLeftShoulder  uint16 = 0x0100
	ButtonRightShoulder uint16 = 0x0200
	ButtonA             uint16 = 0x1000
	ButtonB             uint16 = 0x2000
	ButtonX             uint16 = 0x4000
	ButtonY             uint16 = 0x8000
)

// State is one immutable controller snapshot, produced once per tick.
// Thumbstick axes are nominally in the signed 16-bit range but are carried
// as int32 so out-of-range glitch values from wireless pads survive long
// enough for the mapping engine to clamp them.
type State struct {
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int32
	ThumbLY      int32
	ThumbRX      int32
	ThumbRY      int32
}
