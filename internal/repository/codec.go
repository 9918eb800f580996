package repository

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/bodylab/trainlog/internal/domain"
)

// History log headers, in file order.
const (
	ColClient          = "Client"
	ColDate            = "Date"
	ColWorkout         = "Workout #"
	ColExerciseNo      = "Exercise #"
	ColMovementPattern = "Movement Pattern"
	ColExercise        = "Exercise"
	ColSets            = "Sets"
	ColReps            = "Reps"
	ColRest            = "Rest (sec)"
	ColDemo            = "Demo"
	ColRPE             = "RPE"
	ColNotes           = "Notes"
	ColCompleted       = "Completed"
)

// HistoryColumns is the header written to every history table.
var HistoryColumns = []string{
	ColClient, ColDate, ColWorkout, ColExerciseNo, ColMovementPattern, ColExercise,
	ColSets, ColReps, ColRest, ColDemo, ColRPE, ColNotes, ColCompleted,
}

var knownColumns = func() map[string]bool {
	m := make(map[string]bool, len(HistoryColumns))
	for _, c := range HistoryColumns {
		m[c] = true
	}
	return m
}()

// decodeEntry builds an entry from one stored row keyed by header. Typed
// fields are parsed leniently; any cell whose text is not the canonical
// rendering of its parsed value, and any column outside HistoryColumns, is
// kept in Source so it is written back exactly as found. A typed column the
// row lacks entirely is kept as empty so older files never gain values.
func decodeEntry(raw map[string]string) domain.LogEntry {
	e := domain.LogEntry{
		ClientID:        raw[ColClient],
		WorkoutID:       raw[ColWorkout],
		ExerciseID:      raw[ColExerciseNo],
		MovementPattern: raw[ColMovementPattern],
		ExerciseName:    raw[ColExercise],
		Sets:            raw[ColSets],
		Reps:            raw[ColReps],
		RestSeconds:     raw[ColRest],
		DemoURL:         raw[ColDemo],
		Notes:           raw[ColNotes],
	}

	keep := func(col string) {
		if e.Source == nil {
			e.Source = make(map[string]string)
		}
		e.Source[col] = raw[col]
	}

	if v, ok := raw[ColDate]; ok {
		e.Date, _ = domain.ParseDay(v)
		if strings.TrimSpace(v) != dateText(e) {
			keep(ColDate)
		}
	} else {
		keep(ColDate)
	}
	if v, ok := raw[ColRPE]; ok {
		e.RPE = parseRPE(v)
		if strings.TrimSpace(v) != rpeText(e) {
			keep(ColRPE)
		}
	} else {
		keep(ColRPE)
	}
	if v, ok := raw[ColCompleted]; ok {
		e.Completed = parseBool(v)
		if strings.ToLower(strings.TrimSpace(v)) != completedText(e) {
			keep(ColCompleted)
		}
	} else {
		keep(ColCompleted)
	}
	for col := range raw {
		if !knownColumns[col] {
			keep(col)
		}
	}
	return e
}

// historyHeader returns HistoryColumns followed by any extra columns carried
// by entries, in the order they are first seen.
func historyHeader(h domain.ClientHistory) []string {
	header := append([]string(nil), HistoryColumns...)
	seen := make(map[string]bool)
	for _, e := range h {
		var extra []string
		for col := range e.Source {
			if !knownColumns[col] && !seen[col] {
				extra = append(extra, col)
			}
		}
		sort.Strings(extra)
		for _, col := range extra {
			seen[col] = true
			header = append(header, col)
		}
	}
	return header
}

// encodeCell returns the value to store for col. Carried source text wins;
// otherwise RPE and Completed come back typed so workbooks get numeric and
// boolean cells.
func encodeCell(e domain.LogEntry, col string) interface{} {
	if v, ok := e.Source[col]; ok {
		return v
	}
	switch col {
	case ColRPE:
		if e.RPE == 0 {
			return ""
		}
		return e.RPE
	case ColCompleted:
		return e.Completed
	}
	return encodeText(e, col)
}

// encodeText returns the text form of col for text-only stores.
func encodeText(e domain.LogEntry, col string) string {
	if v, ok := e.Source[col]; ok {
		return v
	}
	switch col {
	case ColClient:
		return e.ClientID
	case ColDate:
		return dateText(e)
	case ColWorkout:
		return e.WorkoutID
	case ColExerciseNo:
		return e.ExerciseID
	case ColMovementPattern:
		return e.MovementPattern
	case ColExercise:
		return e.ExerciseName
	case ColSets:
		return e.Sets
	case ColReps:
		return e.Reps
	case ColRest:
		return e.RestSeconds
	case ColDemo:
		return e.DemoURL
	case ColRPE:
		return rpeText(e)
	case ColNotes:
		return e.Notes
	case ColCompleted:
		return completedText(e)
	}
	return ""
}

func dateText(e domain.LogEntry) string {
	if !e.HasDate() {
		return ""
	}
	return e.Date.Format(domain.DateLayout)
}

func rpeText(e domain.LogEntry) string {
	if e.RPE == 0 {
		return ""
	}
	return strconv.Itoa(e.RPE)
}

func completedText(e domain.LogEntry) string {
	return strconv.FormatBool(e.Completed)
}

// parseRPE accepts "7" and float renderings such as "7.0". Anything else,
// including fractional values, reads as 0.
func parseRPE(s string) int {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0
	}
	return int(f)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "x":
		return true
	}
	return false
}

func blankRow(raw map[string]string) bool {
	for _, v := range raw {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
