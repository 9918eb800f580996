package app

import (
	"time"

	"github.com/bodylab/trainlog/internal/domain"
)

// SummaryRequest selects which part of a client's history to summarize.
// Window and Last are alternatives: Window bounds by date, Last keeps the
// most recent entries. Both zero means the whole history.
type SummaryRequest struct {
	Client domain.Client
	Window time.Duration
	Last   int
	Now    *time.Time
}

// NewSummaryRequest returns the post-save weekly view.
func NewSummaryRequest(client domain.Client) SummaryRequest {
	return SummaryRequest{
		Client: client,
		Window: 7 * 24 * time.Hour,
	}
}

// WithDays sets a day-based window.
func (r SummaryRequest) WithDays(days int) SummaryRequest {
	r.Window = time.Duration(days) * 24 * time.Hour
	return r
}

type SummaryResponse struct {
	GeneratedAt time.Time
	Client      domain.Client
	Window      time.Duration
	Rows        []domain.SummaryRow
	EntryCount  int
	Undated     int
}

// Totals adds up exercise and completion counts across all rows.
func (r *SummaryResponse) Totals() (exercises, completed int) {
	for _, row := range r.Rows {
		exercises += row.ExerciseCount
		completed += row.CompletedCount
	}
	return exercises, completed
}
