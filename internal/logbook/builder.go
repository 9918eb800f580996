// Package logbook holds the pure session logic: seeding drafts from prior
// history, appending finished sessions to a client's log, and rolling the
// log up per workout day. Nothing here touches storage.
package logbook

import (
	"fmt"

	"github.com/bodylab/trainlog/internal/domain"
)

type exerciseKey struct {
	code string
	name string
}

// SelectWorkout returns the template rows of workoutID.
// Returns ErrValidation if the workout has no rows.
func SelectWorkout(tmpl *domain.Template, workoutID string) ([]domain.ExerciseRow, error) {
	var rows []domain.ExerciseRow
	if tmpl != nil {
		rows = tmpl.RowsFor(workoutID)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no exercises found for workout %q", domain.ErrValidation, workoutID)
	}
	return rows, nil
}

// BuildDrafts returns one draft per row, in row order. A row is matched to
// history by exercise code and name; the most recent match seeds the rating
// and notes, with the later stored entry winning a same-day tie. Unmatched
// rows get DefaultRPE and empty notes.
func BuildDrafts(rows []domain.ExerciseRow, history domain.ClientHistory) ([]domain.EntryDraft, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: workout has no exercises", domain.ErrValidation)
	}

	latest := latestByExercise(history)

	drafts := make([]domain.EntryDraft, 0, len(rows))
	for _, row := range rows {
		d := domain.EntryDraft{
			Row:   row,
			RPE:   domain.DefaultRPE,
			Tempo: domain.FormatTempo(row.TempoRaw),
		}
		if e, ok := latest[exerciseKey{code: row.Code, name: row.Name}]; ok {
			if e.HasRPE() {
				d.RPE = e.RPE
			}
			d.Notes = e.Notes
			if e.HasDate() {
				from := e.Date
				d.PrefilledFrom = &from
			}
		}
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// latestByExercise indexes the most recent entry per exercise. Entries with
// an unreadable date sort before every dated entry.
func latestByExercise(history domain.ClientHistory) map[exerciseKey]domain.LogEntry {
	latest := make(map[exerciseKey]domain.LogEntry)
	for _, e := range history {
		k := exerciseKey{code: e.ExerciseID, name: e.ExerciseName}
		if prev, ok := latest[k]; ok && e.Date.Before(prev.Date) {
			continue
		}
		latest[k] = e
	}
	return latest
}
