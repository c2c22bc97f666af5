package theme

import "strings"

// Mode is the process-wide colour scheme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// StorageKey is the preference key holding the persisted mode.
const StorageKey = "theme"

// ParseMode recognises the persisted literals "dark" and "light".
func ParseMode(value string) (Mode, bool) {
	switch Mode(strings.TrimSpace(value)) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	default:
		return Light, false
	}
}

// IsDark reports whether m is the dark scheme.
func (m Mode) IsDark() bool {
	return m == Dark
}

// Opposite returns the mode a toggle switches to.
func (m Mode) Opposite() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string {
	return string(m)
}

// ToggleLabel is the text of the control that switches away from m.
func (m Mode) ToggleLabel() string {
	if m == Dark {
		return "☀️ Light Mode"
	}
	return "🌙 Dark Mode"
}
