package domain

import "time"

const (
	MinRPE     = 1
	MaxRPE     = 10
	DefaultRPE = 5
)

// LogEntry is one saved observation of one exercise. Entries are never
// updated after they are written.
type LogEntry struct {
	ClientID        string
	Date            time.Time // calendar day; zero when the stored value could not be parsed
	WorkoutID       string
	ExerciseID      string
	MovementPattern string
	ExerciseName    string
	Sets            string
	Reps            string
	RestSeconds     string
	DemoURL         string
	RPE             int // 0 when the stored value could not be parsed
	Notes           string
	Completed       bool

	// Source holds the original cell text by column name for entries read
	// back from storage. Stores write these values back verbatim so that
	// malformed historical data survives a save untouched.
	Source map[string]string
}

// HasDate reports whether the entry carries a usable calendar date.
func (e LogEntry) HasDate() bool {
	return !e.Date.IsZero()
}

// HasRPE reports whether the entry carries an in-range rating.
func (e LogEntry) HasRPE() bool {
	return ValidRPE(e.RPE)
}

// ValidRPE reports whether v is on the 1..10 scale.
func ValidRPE(v int) bool {
	return v >= MinRPE && v <= MaxRPE
}

// ClientHistory is the ordered, append-only log of one client.
type ClientHistory []LogEntry
