package domain

import "strings"

// ExerciseRow is one line of a client's workout template.
type ExerciseRow struct {
	WorkoutID       string
	Code            string // "Order" or "Code" column
	MovementPattern string
	Name            string
	Sets            string
	Reps            string
	RestSeconds     string // optional
	TempoRaw        string // optional
	DemoURL         string
}

// HasDemo reports whether the demo cell holds a link worth showing.
func (r ExerciseRow) HasDemo() bool {
	return strings.Contains(r.DemoURL, "http")
}

// Template is the full exercise table for one client, in sheet order.
type Template struct {
	Client string
	Rows   []ExerciseRow
}

// Workouts returns the distinct non-blank workout identifiers in the order
// they first appear.
func (t *Template) Workouts() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Rows {
		if r.WorkoutID == "" || seen[r.WorkoutID] {
			continue
		}
		seen[r.WorkoutID] = true
		out = append(out, r.WorkoutID)
	}
	return out
}

// RowsFor returns the rows belonging to workoutID, preserving template order.
func (t *Template) RowsFor(workoutID string) []ExerciseRow {
	var out []ExerciseRow
	for _, r := range t.Rows {
		if r.WorkoutID == workoutID {
			out = append(out, r)
		}
	}
	return out
}
