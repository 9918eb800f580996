package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bodylab/trainlog/internal/repository"
)

func writeWorkbook(t *testing.T, tabs map[string][][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	for name, rows := range tabs {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, r := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, f.SetSheetRow(name, cell, &r))
		}
	}
	path := filepath.Join(t.TempDir(), "program.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestWorkbookTemplates(t *testing.T) {
	ctx := context.Background()
	path := writeWorkbook(t, map[string][][]interface{}{
		"Alex": {
			{"Workout #", "Order", "Exercise", "Sets", "Tempo"},
			{"1", "A1", "Squat", "3", "3,1,1"},
			{"2", "A1", "Bench", "4", ""},
		},
		"Client_Codes": {
			{"Client Name", "Access Code"},
			{"alex", "1234"},
		},
		"Quotes": {
			{"Week one"},
			{"Week two"},
		},
	})
	w := repository.NewWorkbookTemplates(path, "Client_Codes", "Quotes")

	tmpl, err := w.LoadTemplate(ctx, "Alex")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tmpl.Workouts())

	codes, err := w.AccessCodes(ctx)
	require.NoError(t, err)
	_, err = codes.Verify("Alex", "1234")
	assert.NoError(t, err)

	q, err := w.WeeklyQuote(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Week two", q)

	_, err = w.LoadTemplate(ctx, "Sam")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
