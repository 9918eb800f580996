package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/bodylab/trainlog/internal/cli/formatter"
	"github.com/bodylab/trainlog/internal/domain"
)

// trainlogHuhTheme returns a huh theme using the Gruvbox palette.
func trainlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(trainlogHuhTheme()).WithShowHelp(false)
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date.
func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// wizardLogin asks for name and access code.
func wizardLogin(name, code *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Access code").
				EchoMode(huh.EchoModePassword).
				Value(code),
		),
	)
}

// wizardSelectWorkout asks which workout to log.
func wizardSelectWorkout(tmpl *domain.Template, result *string) *huh.Form {
	ids := tmpl.Workouts()
	options := make([]huh.Option[string], 0, len(ids))
	for _, id := range ids {
		options = append(options, huh.NewOption(fmt.Sprintf("Workout %s (%d exercises)", id, len(tmpl.RowsFor(id))), id))
	}
	if *result == "" && len(ids) > 0 {
		*result = ids[0]
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which workout?").
				Options(options...).
				Value(result),
		),
	)
}

// wizardDate asks for the log date, pre-filled with the given default.
func wizardDate(result *string) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(result).
				Validate(validateDate),
		),
	)
}

func rpeOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, domain.MaxRPE)
	for v := domain.MinRPE; v <= domain.MaxRPE; v++ {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d", v), v))
	}
	return opts
}

// wizardExercises builds one group per draft, editing the drafts in place.
func wizardExercises(s *domain.Session) *huh.Form {
	groups := make([]*huh.Group, 0, len(s.Drafts))
	for i := range s.Drafts {
		d := &s.Drafts[i]
		groups = append(groups, huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("%s  %s", d.Row.Code, d.Row.Name)).
				Description(formatter.FormatDraftDescription(*d)),
			huh.NewSelect[int]().
				Title("RPE").
				Options(rpeOptions()...).
				Inline(true).
				Value(&d.RPE),
			huh.NewInput().
				Title("Notes").
				Value(&d.Notes),
			huh.NewConfirm().
				Title("Completed?").
				Affirmative("Yes").
				Negative("No").
				Value(&d.Completed),
		))
	}
	return newForm(groups...)
}

// wizardConfirm asks a yes/no question.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	)
}
