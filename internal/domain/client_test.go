package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_Normalizes(t *testing.T) {
	c := NewClient("  aLEX smith ")
	assert.Equal(t, "alex smith", c.Key)
	assert.Equal(t, "Alex Smith", c.Name)
	assert.False(t, c.IsZero())
}

func TestNewClient_Blank(t *testing.T) {
	assert.True(t, NewClient("   ").IsZero())
}

func TestTemplate_WorkoutsInFirstAppearanceOrder(t *testing.T) {
	tmpl := &Template{Rows: []ExerciseRow{
		{WorkoutID: "Workout B", Code: "1"},
		{WorkoutID: "", Code: "x"},
		{WorkoutID: "Workout A", Code: "1"},
		{WorkoutID: "Workout B", Code: "2"},
	}}

	assert.Equal(t, []string{"Workout B", "Workout A"}, tmpl.Workouts())
	rows := tmpl.RowsFor("Workout B")
	assert.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1].Code)
	assert.Empty(t, tmpl.RowsFor("Workout C"))
}

func TestExerciseRow_HasDemo(t *testing.T) {
	assert.True(t, ExerciseRow{DemoURL: "https://youtu.be/x"}.HasDemo())
	assert.False(t, ExerciseRow{DemoURL: "see coach"}.HasDemo())
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey("alex smith"))
	assert.True(t, ValidKey("o'neil"))
	for _, k := range []string{"", "  ", "..", "../x", "a/b", `a\b`, "a\x00b"} {
		assert.False(t, ValidKey(k), "%q", k)
	}
}
