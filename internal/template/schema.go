// Package template maps a client's workout sheet onto exercise rows.
package template

// Template sheet headers. Where two names are listed the sheet may use
// either; older sheets use Order and Movement Pattern, newer ones Code and
// Pattern.
var (
	ColWorkout  = []string{"Workout #"}
	ColCode     = []string{"Order", "Code"}
	ColPattern  = []string{"Movement Pattern", "Pattern"}
	ColExercise = []string{"Exercise"}
	ColSets     = []string{"Sets"}
	ColReps     = []string{"Reps"}
	ColRest     = []string{"Rest (sec)"}
	ColTempo    = []string{"Tempo"}
	ColDemo     = []string{"Demo"}
)

// requiredColumns must be present for a sheet to be usable at all. Every
// other column is optional and reads as empty when missing.
var requiredColumns = [][]string{ColWorkout, ColCode, ColExercise}
