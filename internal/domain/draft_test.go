package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionEntries_CopiesRowAndDraftFields(t *testing.T) {
	s := &Session{
		Client:    NewClient("alex"),
		WorkoutID: "Workout 1",
		Date:      time.Date(2024, 1, 8, 18, 30, 0, 0, time.UTC),
		Drafts: []EntryDraft{
			{
				Row:       ExerciseRow{Code: "3", Name: "Squat", MovementPattern: "Knee", Sets: "3", Reps: "5", RestSeconds: "120", DemoURL: "http://x"},
				RPE:       8,
				Notes:     "heavy",
				Completed: true,
			},
			{Row: ExerciseRow{Code: "4", Name: "Row"}, RPE: 5},
		},
	}

	entries, err := s.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	e := entries[0]
	assert.Equal(t, "Alex", e.ClientID)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), e.Date, "time of day is dropped")
	assert.Equal(t, "Workout 1", e.WorkoutID)
	assert.Equal(t, "3", e.ExerciseID)
	assert.Equal(t, "Squat", e.ExerciseName)
	assert.Equal(t, "120", e.RestSeconds)
	assert.Equal(t, 8, e.RPE)
	assert.Equal(t, "heavy", e.Notes)
	assert.True(t, e.Completed)
	assert.Nil(t, e.Source)

	assert.Equal(t, "4", entries[1].ExerciseID)
	assert.Equal(t, 1, s.CompletedCount())
}

func TestSessionEntries_RejectsOutOfRangeRPE(t *testing.T) {
	s := &Session{
		Client: NewClient("alex"),
		Date:   time.Now(),
		Drafts: []EntryDraft{{Row: ExerciseRow{Code: "1", Name: "Press"}, RPE: 11}},
	}
	_, err := s.Entries()
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParseDay(t *testing.T) {
	want := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2024-01-08", "2024-01-08 07:45:00", "01-08-24", "1/8/2024", "08.01.2024"} {
		got, ok := ParseDay(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseDay("last tuesday")
	assert.False(t, ok)
	_, ok = ParseDay("")
	assert.False(t, ok)
}
