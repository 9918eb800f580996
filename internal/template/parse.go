package template

import (
	"errors"
	"fmt"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/sheet"
)

// Parse builds a client's template from raw sheet values, header first.
// Rows without an exercise name are skipped.
func Parse(client string, values [][]string) (*domain.Template, error) {
	tbl := sheet.NewTable(values)
	if len(tbl.Header) == 0 {
		return nil, fmt.Errorf("sheet for %s is empty", client)
	}
	if errs := ValidateHeader(tbl); len(errs) > 0 {
		return nil, fmt.Errorf("sheet for %s: %w", client, errors.Join(errs...))
	}

	tmpl := &domain.Template{Client: client}
	for r := 0; r < tbl.Len(); r++ {
		row := domain.ExerciseRow{
			WorkoutID:       tbl.Cell(r, ColWorkout...),
			Code:            tbl.Cell(r, ColCode...),
			MovementPattern: tbl.Cell(r, ColPattern...),
			Name:            tbl.Cell(r, ColExercise...),
			Sets:            tbl.Cell(r, ColSets...),
			Reps:            tbl.Cell(r, ColReps...),
			RestSeconds:     tbl.Cell(r, ColRest...),
			TempoRaw:        tbl.Cell(r, ColTempo...),
			DemoURL:         tbl.Cell(r, ColDemo...),
		}
		if row.Name == "" {
			continue
		}
		tmpl.Rows = append(tmpl.Rows, row)
	}
	return tmpl, nil
}
