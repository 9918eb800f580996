package logbook

import (
	"sort"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
)

// SummaryOptions controls which entries Summarize considers.
type SummaryOptions struct {
	// Window keeps only entries dated at or after Now-Window. Zero disables
	// the filter.
	Window time.Duration
	// Now anchors Window. Zero means time.Now().
	Now time.Time
}

type groupKey struct {
	workout string
	day     time.Time
}

type groupAcc struct {
	row    domain.SummaryRow
	rpeSum int
}

// Summarize rolls history up per (workout, calendar day), newest day first.
// Groups sharing a day keep the order in which they first appear. Entries
// without a readable date cannot be placed on a day and are left out; an
// unreadable rating counts toward the exercise total but not the mean.
func Summarize(history domain.ClientHistory, opts SummaryOptions) []domain.SummaryRow {
	var bound time.Time
	if opts.Window > 0 {
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		bound = now.Add(-opts.Window)
	}

	groups := make(map[groupKey]*groupAcc)
	var order []groupKey
	for _, e := range history {
		if !e.HasDate() {
			continue
		}
		day := domain.Day(e.Date)
		if !bound.IsZero() && day.Before(bound) {
			continue
		}

		k := groupKey{workout: e.WorkoutID, day: day}
		acc, ok := groups[k]
		if !ok {
			acc = &groupAcc{row: domain.SummaryRow{WorkoutID: e.WorkoutID, Date: day}}
			groups[k] = acc
			order = append(order, k)
		}
		acc.row.ExerciseCount++
		if e.Completed {
			acc.row.CompletedCount++
		}
		if e.HasRPE() {
			acc.row.RatedCount++
			acc.rpeSum += e.RPE
		}
	}

	rows := make([]domain.SummaryRow, 0, len(order))
	for _, k := range order {
		acc := groups[k]
		if acc.row.RatedCount > 0 {
			acc.row.MeanRPE = float64(acc.rpeSum) / float64(acc.row.RatedCount)
		}
		rows = append(rows, acc.row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return rows
}

// Latest returns up to n entries ordered newest first, keeping stored order
// among entries of the same day. Undated entries sort last. n <= 0 returns
// every entry.
func Latest(history domain.ClientHistory, n int) domain.ClientHistory {
	out := make(domain.ClientHistory, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
