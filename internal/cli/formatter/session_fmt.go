package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
)

// FormatWelcome renders the greeting shown after login.
func FormatWelcome(client domain.Client, quote string) string {
	var b strings.Builder
	b.WriteString(Bold(fmt.Sprintf("Welcome, %s!", client.Name)))
	if quote != "" {
		b.WriteString("\n\n")
		b.WriteString(StylePurple.Render("“" + quote + "”"))
	}
	return RenderBox("trainlog", b.String())
}

// FormatWorkouts lists workouts with their exercise counts.
func FormatWorkouts(tmpl *domain.Template) string {
	ids := tmpl.Workouts()
	if len(ids) == 0 {
		return Dim("No workouts in this program.") + "\n"
	}
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, []string{id, fmt.Sprintf("%d", len(tmpl.RowsFor(id)))})
	}
	return RenderBox("Workouts", RenderTable([]string{"WORKOUT", "EXERCISES"}, rows, 1))
}

// FormatOverview renders a workout's exercises as a table.
func FormatOverview(workoutID string, rows []domain.ExerciseRow) string {
	data := make([][]string, 0, len(rows))
	for _, r := range rows {
		data = append(data, []string{
			r.Code,
			r.MovementPattern,
			r.Name,
			r.Sets,
			r.Reps,
			r.RestSeconds,
			domain.FormatTempo(r.TempoRaw),
		})
	}
	table := RenderTable([]string{"CODE", "PATTERN", "EXERCISE", "SETS", "REPS", "REST", "TEMPO"}, data)
	return RenderBox("Workout "+workoutID, table)
}

// FormatDraftDescription renders the detail lines shown above a draft's
// inputs in the log form.
func FormatDraftDescription(d domain.EntryDraft) string {
	lines := []string{
		fmt.Sprintf("%s × %s, rest %ss", orDash(d.Row.Sets), orDash(d.Row.Reps), orDash(d.Row.RestSeconds)),
		"Tempo: " + d.Tempo,
	}
	if d.Row.HasDemo() {
		lines = append(lines, "Demo: "+d.Row.DemoURL)
	}
	if d.PrefilledFrom != nil {
		lines = append(lines, fmt.Sprintf("Last logged %s", d.PrefilledFrom.Format(domain.DateLayout)))
	}
	return strings.Join(lines, "\n")
}

// FormatSaved confirms a save.
func FormatSaved(s *domain.Session, now time.Time) string {
	return fmt.Sprintf("%s Logged workout %s for %s on %s (%d/%d done)\n",
		StyleGreen.Render("✔"), s.WorkoutID, s.Client.Name, HumanDate(s.Date, now),
		s.CompletedCount(), len(s.Drafts))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
