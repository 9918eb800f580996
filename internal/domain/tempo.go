package domain

import (
	"fmt"
	"strings"
)

// NoTempo is the display value for a missing or unparseable tempo.
const NoTempo = "None"

// Phase markers shown after each tempo field.
const (
	MarkEccentric  = "⬇"
	MarkPause      = "⏸"
	MarkConcentric = "⬆"
)

// FormatTempo renders a raw tempo cell as marked eccentric/pause/concentric
// fields, e.g. "3 ⬇ | 1 ⏸ | 1 ⬆".
// Accepts "3,1,1" (exactly two commas) or "311" (exactly three digits).
func FormatTempo(raw string) string {
	var phases []string
	switch {
	case strings.Count(raw, ",") == 2:
		phases = strings.Split(raw, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	case len(raw) == 3 && isDigits(raw):
		phases = []string{raw[0:1], raw[1:2], raw[2:3]}
	default:
		return NoTempo
	}
	return fmt.Sprintf("%s %s | %s %s | %s %s",
		phases[0], MarkEccentric, phases[1], MarkPause, phases[2], MarkConcentric)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
