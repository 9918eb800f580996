package domain

import "time"

// SummaryRow is the rollup of one (workout, day) group. Derived, never stored.
type SummaryRow struct {
	WorkoutID      string
	Date           time.Time
	ExerciseCount  int
	CompletedCount int
	MeanRPE        float64
	RatedCount     int // entries that contributed to MeanRPE
}

