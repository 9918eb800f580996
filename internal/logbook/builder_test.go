package logbook

import (
	"testing"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(code, name string, date time.Time, rpe int, notes string) domain.LogEntry {
	return domain.LogEntry{
		ClientID:     "Alex",
		Date:         date,
		WorkoutID:    "Workout 1",
		ExerciseID:   code,
		ExerciseName: name,
		RPE:          rpe,
		Notes:        notes,
	}
}

func TestBuildDrafts_MostRecentMatchWins(t *testing.T) {
	history := domain.ClientHistory{
		entry("3", "Squat", day(2024, 1, 8), 8, "felt strong"),
		entry("3", "Squat", day(2024, 1, 1), 6, "easy"),
	}
	rows := []domain.ExerciseRow{
		{Code: "3", Name: "Squat", TempoRaw: "3,1,1"},
		{Code: "4", Name: "Bench"},
	}

	drafts, err := BuildDrafts(rows, history)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, 8, drafts[0].RPE)
	assert.Equal(t, "felt strong", drafts[0].Notes)
	require.NotNil(t, drafts[0].PrefilledFrom)
	assert.Equal(t, day(2024, 1, 8), *drafts[0].PrefilledFrom)
	assert.Equal(t, "3 ⬇ | 1 ⏸ | 1 ⬆", drafts[0].Tempo)

	assert.Equal(t, domain.DefaultRPE, drafts[1].RPE)
	assert.Empty(t, drafts[1].Notes)
	assert.Nil(t, drafts[1].PrefilledFrom)
	assert.Equal(t, domain.NoTempo, drafts[1].Tempo)
}

func TestBuildDrafts_RequiresCodeAndNameMatch(t *testing.T) {
	history := domain.ClientHistory{
		entry("3", "Front Squat", day(2024, 1, 8), 9, "wrong name"),
		entry("2", "Squat", day(2024, 1, 8), 9, "wrong code"),
	}
	drafts, err := BuildDrafts([]domain.ExerciseRow{{Code: "3", Name: "Squat"}}, history)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRPE, drafts[0].RPE)
	assert.Empty(t, drafts[0].Notes)
}

func TestBuildDrafts_SameDayTieTakesLaterStoredEntry(t *testing.T) {
	history := domain.ClientHistory{
		entry("1", "Deadlift", day(2024, 2, 1), 7, "first save"),
		entry("1", "Deadlift", day(2024, 2, 1), 9, "second save"),
		entry("1", "Deadlift", day(2024, 1, 1), 4, "older"),
	}
	drafts, err := BuildDrafts([]domain.ExerciseRow{{Code: "1", Name: "Deadlift"}}, history)
	require.NoError(t, err)
	assert.Equal(t, 9, drafts[0].RPE)
	assert.Equal(t, "second save", drafts[0].Notes)
}

func TestBuildDrafts_UndatedEntryLosesToDated(t *testing.T) {
	history := domain.ClientHistory{
		entry("1", "Row", day(2024, 3, 1), 6, "dated"),
		entry("1", "Row", time.Time{}, 9, "bad date"),
	}
	drafts, err := BuildDrafts([]domain.ExerciseRow{{Code: "1", Name: "Row"}}, history)
	require.NoError(t, err)
	assert.Equal(t, 6, drafts[0].RPE)
}

func TestBuildDrafts_UnreadableRatingFallsBackToDefault(t *testing.T) {
	history := domain.ClientHistory{entry("1", "Row", day(2024, 3, 1), 0, "kept note")}
	drafts, err := BuildDrafts([]domain.ExerciseRow{{Code: "1", Name: "Row"}}, history)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRPE, drafts[0].RPE)
	assert.Equal(t, "kept note", drafts[0].Notes)
}

func TestBuildDrafts_PreservesRowOrder(t *testing.T) {
	rows := []domain.ExerciseRow{{Code: "C"}, {Code: "A"}, {Code: "B"}}
	drafts, err := BuildDrafts(rows, nil)
	require.NoError(t, err)
	for i, d := range drafts {
		assert.Equal(t, rows[i].Code, d.Row.Code)
	}
}

func TestBuildDrafts_EmptyRowsIsValidationError(t *testing.T) {
	drafts, err := BuildDrafts(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, drafts)
}

func TestSelectWorkout(t *testing.T) {
	tmpl := &domain.Template{Rows: []domain.ExerciseRow{
		{WorkoutID: "Workout 1", Code: "1"},
		{WorkoutID: "Workout 2", Code: "1"},
		{WorkoutID: "Workout 1", Code: "2"},
	}}

	rows, err := SelectWorkout(tmpl, "Workout 1")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = SelectWorkout(tmpl, "Workout 9")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, rows)
}
