package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bodylab/trainlog/internal/domain"
)

func TestFormatDraftDescription(t *testing.T) {
	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	d := domain.EntryDraft{
		Row:           domain.ExerciseRow{Sets: "3", Reps: "8", RestSeconds: "90", DemoURL: "https://example.com/squat"},
		Tempo:         domain.FormatTempo("311"),
		PrefilledFrom: &from,
	}

	out := FormatDraftDescription(d)
	assert.Contains(t, out, "3 × 8, rest 90s")
	assert.Contains(t, out, "Demo: https://example.com/squat")
	assert.Contains(t, out, "Last logged 2024-03-04")
}

func TestFormatDraftDescription_HidesNonLinkDemo(t *testing.T) {
	d := domain.EntryDraft{Row: domain.ExerciseRow{DemoURL: "ask coach"}, Tempo: domain.NoTempo}

	out := FormatDraftDescription(d)
	assert.NotContains(t, out, "Demo")
	assert.Contains(t, out, "- × -, rest -s")
	assert.Contains(t, out, "Tempo: None")
}

func TestFormatWorkouts(t *testing.T) {
	tmpl := &domain.Template{Rows: []domain.ExerciseRow{
		{WorkoutID: "1", Name: "Squat"}, {WorkoutID: "1", Name: "Row"}, {WorkoutID: "2", Name: "Bench"},
	}}
	out := FormatWorkouts(tmpl)
	assert.Contains(t, out, "WORKOUT")
	assert.Contains(t, out, "2")
}
