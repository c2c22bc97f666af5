package theme

import (
	"github.com/muesli/termenv"
)

// Ambient reports the environment's colour scheme preference. The boolean is
// false when the environment gives no signal.
type Ambient func() (Mode, bool)

// NoAmbient is an Ambient with no signal.
func NoAmbient() (Mode, bool) {
	return Light, false
}

// Fixed returns an Ambient that always reports m.
func Fixed(m Mode) Ambient {
	return func() (Mode, bool) {
		return m, true
	}
}

// TerminalAmbient derives the preference from the terminal background colour.
// Outputs without colour support give no signal.
func TerminalAmbient(out *termenv.Output) Ambient {
	return func() (Mode, bool) {
		if out == nil || out.Profile == termenv.Ascii {
			return Light, false
		}
		if out.HasDarkBackground() {
			return Dark, true
		}
		return Light, true
	}
}

// HintAmbient maps a Sec-CH-Prefers-Color-Scheme client hint value.
func HintAmbient(hint string) Ambient {
	return func() (Mode, bool) {
		switch hint {
		case "dark", `"dark"`:
			return Dark, true
		case "light", `"light"`:
			return Light, true
		default:
			return Light, false
		}
	}
}
