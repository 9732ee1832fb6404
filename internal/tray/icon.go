package tray

// GetIcon returns the tray icon data. No icon asset ships with the mapper
// yet; systray falls back to the platform default when nil.
func GetIcon() []byte {
	return nil
}
