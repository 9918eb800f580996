package domain

import (
	"fmt"
	"time"
)

// EntryDraft is the editable, pre-filled form state for one exercise before
// it is saved.
type EntryDraft struct {
	Row       ExerciseRow
	RPE       int
	Notes     string
	Completed bool
	Tempo     string // display form, see FormatTempo

	// PrefilledFrom is the date of the history entry the draft was seeded
	// from, nil when defaults were used.
	PrefilledFrom *time.Time
}

// Session is one in-progress workout log for a client.
type Session struct {
	Client    Client
	WorkoutID string
	Date      time.Time
	Drafts    []EntryDraft

	// HistoryErr is set when prior history could not be read and the drafts
	// hold defaults instead. It wraps ErrHistoryRead.
	HistoryErr error
}

// Entries finalizes the drafts into log entries, in draft order.
// Returns ErrValidation if any rating is off the 1..10 scale.
func (s *Session) Entries() ([]LogEntry, error) {
	day := Day(s.Date)
	entries := make([]LogEntry, 0, len(s.Drafts))
	for _, d := range s.Drafts {
		if !ValidRPE(d.RPE) {
			return nil, fmt.Errorf("%w: rpe %d for %s %s is outside %d..%d",
				ErrValidation, d.RPE, d.Row.Code, d.Row.Name, MinRPE, MaxRPE)
		}
		entries = append(entries, LogEntry{
			ClientID:        s.Client.Name,
			Date:            day,
			WorkoutID:       s.WorkoutID,
			ExerciseID:      d.Row.Code,
			MovementPattern: d.Row.MovementPattern,
			ExerciseName:    d.Row.Name,
			Sets:            d.Row.Sets,
			Reps:            d.Row.Reps,
			RestSeconds:     d.Row.RestSeconds,
			DemoURL:         d.Row.DemoURL,
			RPE:             d.RPE,
			Notes:           d.Notes,
			Completed:       d.Completed,
		})
	}
	return entries, nil
}

// CompletedCount returns how many drafts are marked done.
func (s *Session) CompletedCount() int {
	n := 0
	for _, d := range s.Drafts {
		if d.Completed {
			n++
		}
	}
	return n
}
