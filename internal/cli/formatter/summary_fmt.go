package formatter

import (
	"fmt"
	"time"

	"github.com/bodylab/trainlog/internal/contract"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/repository"
)

// SummaryHeaders are the column titles of a summary table.
var SummaryHeaders = []string{"DATE", "WORKOUT", "DONE", "MEAN RPE"}

// SummaryCells renders one summary row as table cells.
func SummaryCells(row domain.SummaryRow, now time.Time) []string {
	return []string{
		HumanDate(row.Date, now),
		row.WorkoutID,
		CompletionBar(row.CompletedCount, row.ExerciseCount),
		FormatMeanRPE(row),
	}
}

// FormatSummary renders a summary response.
func FormatSummary(resp *contract.SummaryResponse) string {
	title := "Summary"
	if days := int(resp.Window.Hours() / 24); days > 0 {
		title = fmt.Sprintf("Last %d days", days)
	}
	if len(resp.Rows) == 0 {
		return RenderBox(title, Dim("No workouts logged in this period."))
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, SummaryCells(r, resp.GeneratedAt))
	}
	body := RenderTable(SummaryHeaders, rows, 3)

	ex, done := resp.Totals()
	body += fmt.Sprintf("\n%s, %d of %s completed", Plural(len(resp.Rows), "session"), done, Plural(ex, "exercise"))
	if len(resp.Rows) > 1 {
		body += "\nRPE trend " + RPESparkline(resp.Rows)
	}
	if resp.Undated > 0 {
		noun := "entries"
		if resp.Undated == 1 {
			noun = "entry"
		}
		body += Dim(fmt.Sprintf("\n%d %s without a readable date not shown", resp.Undated, noun))
	}
	return RenderBox(title, body)
}

// FormatHistory renders raw entries, newest first as given.
func FormatHistory(h domain.ClientHistory, now time.Time) string {
	if len(h) == 0 {
		return Dim("No entries logged yet.") + "\n"
	}
	rows := make([][]string, 0, len(h))
	for _, e := range h {
		done := StyleDim.Render("·")
		if e.Completed {
			done = StyleGreen.Render("✔")
		}
		date := HumanDate(e.Date, now)
		if raw := e.Source[repository.ColDate]; raw != "" && !e.HasDate() {
			date = Dim(raw)
		}
		rows = append(rows, []string{
			date,
			e.WorkoutID,
			e.ExerciseID,
			Truncate(e.ExerciseName, 28),
			FormatRPE(e.RPE),
			done,
			Truncate(e.Notes, 32),
		})
	}
	return RenderBox("History", RenderTable([]string{"DATE", "WORKOUT", "CODE", "EXERCISE", "RPE", "DONE", "NOTES"}, rows, 4))
}
