package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bodylab/trainlog/internal/cli/formatter"
	"github.com/bodylab/trainlog/internal/contract"
	"github.com/bodylab/trainlog/internal/domain"
)

type summaryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var summaryKeys = summaryKeyMap{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// summaryView is a scrollable table of summary rows with a detail line for
// the selected row.
type summaryView struct {
	resp  *contract.SummaryResponse
	table table.Model
}

func newSummaryView(resp *contract.SummaryResponse) *summaryView {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Workout", Width: 8},
		{Title: "Done", Width: 9},
		{Title: "Mean RPE", Width: 9},
	}
	rows := make([]table.Row, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		rows = append(rows, table.Row{
			formatter.HumanDate(r.Date, resp.GeneratedAt),
			r.WorkoutID,
			fmt.Sprintf("%d/%d", r.CompletedCount, r.ExerciseCount),
			meanRPEText(r),
		})
	}

	height := len(rows) + 1
	if height > 15 {
		height = 15
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorHeader).
		Bold(false)
	t.SetStyles(styles)

	return &summaryView{resp: resp, table: t}
}

func meanRPEText(r domain.SummaryRow) string {
	if r.RatedCount == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", r.MeanRPE)
}

func (v *summaryView) Init() tea.Cmd { return nil }

func (v *summaryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, summaryKeys.Quit) {
		return v, tea.Quit
	}
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// selected returns the highlighted summary row, if any.
func (v *summaryView) selected() (domain.SummaryRow, bool) {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.resp.Rows) {
		return domain.SummaryRow{}, false
	}
	return v.resp.Rows[i], true
}

func (v *summaryView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Summary for " + v.resp.Client.Name))
	b.WriteString("\n\n")
	if len(v.resp.Rows) == 0 {
		b.WriteString(formatter.Dim("No workouts logged in this period."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.table.View())
		b.WriteString("\n\n")
		if r, ok := v.selected(); ok {
			b.WriteString(formatter.CompletionBar(r.CompletedCount, r.ExerciseCount))
			b.WriteString("  ")
			b.WriteString(formatter.Dim(fmt.Sprintf("%d of %d exercises rated", r.RatedCount, r.ExerciseCount)))
			b.WriteString("\n")
		}
	}
	b.WriteString(formatter.Dim(fmt.Sprintf("%s · %s · %s",
		summaryKeys.Up.Help().Key+" "+summaryKeys.Up.Help().Desc,
		summaryKeys.Down.Help().Key+" "+summaryKeys.Down.Help().Desc,
		summaryKeys.Quit.Help().Key+" "+summaryKeys.Quit.Help().Desc)))
	return b.String()
}
