package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bodylab/trainlog/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// HumanDate renders a calendar day relative to now: Today, Yesterday, or
// "Mon Jan 2, 2006". Zero dates render as "unknown".
func HumanDate(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	day := domain.Day(t)
	today := domain.Day(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	return t.Format("Mon Jan 2, 2006")
}

// FormatRPE renders a rating with its effort color, "-" when unrated.
func FormatRPE(rpe int) string {
	if rpe <= 0 {
		return StyleDim.Render("-")
	}
	return RPEStyle(rpe).Render(fmt.Sprintf("%d", rpe))
}

// FormatMeanRPE renders an average rating to one decimal, "-" when nothing
// was rated.
func FormatMeanRPE(row domain.SummaryRow) string {
	if row.RatedCount == 0 {
		return StyleDim.Render("-")
	}
	return RPEStyle(int(row.MeanRPE + 0.5)).Render(fmt.Sprintf("%.1f", row.MeanRPE))
}

// CompletionBar renders done/total as a short bar, e.g. "███░ 3/4".
func CompletionBar(done, total int) string {
	const width = 10
	if total <= 0 {
		return StyleDim.Render(strings.Repeat("░", width) + " 0/0")
	}
	filled := done * width / total
	style := StyleYellow
	if done == total {
		style = StyleGreen
	}
	return style.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %d/%d", done, total)
}

// Truncate shortens s to max runes, marking the cut with "…".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// Plural returns "n word" with an "s" appended unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RPESparkline plots mean RPE per row, oldest first. Rows are expected
// newest first as summaries return them. Unrated rows show as "·".
func RPESparkline(rows []domain.SummaryRow) string {
	var b strings.Builder
	for i := len(rows) - 1; i >= 0; i-- {
		r := rows[i]
		if r.RatedCount == 0 {
			b.WriteRune('·')
			continue
		}
		level := int((r.MeanRPE-domain.MinRPE)/(domain.MaxRPE-domain.MinRPE)*float64(len(sparkLevels)-1) + 0.5)
		level = max(0, min(level, len(sparkLevels)-1))
		b.WriteRune(sparkLevels[level])
	}
	return b.String()
}
