package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bodylab/trainlog/internal/cli/formatter"
	"github.com/bodylab/trainlog/internal/contract"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/service"
)

// logOverrides are the per-exercise values given as flags.
type logOverrides struct {
	rpe   map[string]int
	notes map[string]string
	done  []string
}

func newLogCmd(app *App) *cobra.Command {
	var who clientFlags
	var workoutID, dateFlag string
	var over logOverrides

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a workout from your program",
		Long: `Log a workout. Ratings and notes start from what you logged last time
for each exercise. Anything not given as a flag is asked for interactively
when running in a terminal.`,
		Example: `  trainlog log
  trainlog log --client alex --code 1234 --workout 2 --rpe A1=7 --rpe A2=8 --done all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := app.now()

			client, err := who.login(ctx, app)
			if err != nil {
				return err
			}
			if app.Interactive {
				fmt.Fprintln(out, formatter.FormatWelcome(client, app.Access.WeeklyQuote(ctx, now)))
			}

			tmpl, err := app.loadTemplateUseCase().LoadTemplate(ctx, client)
			if err != nil {
				return err
			}
			if workoutID == "" {
				if !app.Interactive {
					return fmt.Errorf("--workout is required (one of %s)", strings.Join(tmpl.Workouts(), ", "))
				}
				if err := wizardSelectWorkout(tmpl, &workoutID).RunWithContext(ctx); err != nil {
					return err
				}
			}

			if dateFlag == "" {
				dateFlag = now.Format(domain.DateLayout)
				if app.Interactive {
					if err := wizardDate(&dateFlag).RunWithContext(ctx); err != nil {
						return err
					}
				}
			}
			date, err := time.Parse(domain.DateLayout, strings.TrimSpace(dateFlag))
			if err != nil {
				return fmt.Errorf("%w: --date must be YYYY-MM-DD", domain.ErrValidation)
			}

			sess, err := app.startSessionUseCase().StartSession(ctx, client, tmpl, workoutID, date)
			if err != nil {
				return err
			}
			if err := over.apply(sess); err != nil {
				return err
			}
			if sess.HistoryErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(
					fmt.Sprintf("Could not read your past sessions (%v); ratings start at %d.", sess.HistoryErr, domain.DefaultRPE)))
			}

			if app.Interactive {
				fmt.Fprintln(out, formatter.FormatOverview(workoutID, rowsOf(sess)))
				if err := wizardExercises(sess).RunWithContext(ctx); err != nil {
					return err
				}
				save, err := app.confirm(ctx, fmt.Sprintf("Save %s?", formatter.Plural(len(sess.Drafts), "exercise")))
				if err != nil {
					return err
				}
				if !save {
					fmt.Fprintln(out, formatter.Dim("Nothing saved."))
					return nil
				}
			}

			merged, err := saveWithRetry(cmd, app, sess)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatSaved(sess, now))

			req := contract.NewSummaryRequest(client).WithDays(app.SummaryDays)
			req.Now = &now
			fmt.Fprintln(out, formatter.FormatSummary(service.SummarizeHistory(merged, req)))
			return nil
		},
	}

	who.register(cmd.Flags())
	cmd.Flags().StringVar(&workoutID, "workout", "", "Workout number from your program")
	cmd.Flags().StringVar(&dateFlag, "date", "", "Workout date (YYYY-MM-DD, default today)")
	cmd.Flags().StringToIntVar(&over.rpe, "rpe", nil, "Rating per exercise code, e.g. A1=7")
	cmd.Flags().StringToStringVar(&over.notes, "note", nil, "Note per exercise code, e.g. A1=\"felt strong\"")
	cmd.Flags().StringSliceVar(&over.done, "done", nil, "Exercise codes completed, or \"all\"")

	return cmd
}

// saveWithRetry saves sess. In interactive mode a persistence failure is
// shown and the user may retry with the same drafts until it succeeds or
// they give up.
func saveWithRetry(cmd *cobra.Command, app *App, sess *domain.Session) (domain.ClientHistory, error) {
	ctx := cmd.Context()
	for {
		merged, err := app.saveSessionUseCase().Save(ctx, sess)
		if err == nil || !app.Interactive || !errors.Is(err, domain.ErrPersistence) {
			return merged, err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning("Save failed: "+err.Error()))
		retry, cerr := app.confirm(ctx, "Retry saving?")
		if cerr != nil {
			return nil, errors.Join(err, cerr)
		}
		if !retry {
			return nil, err
		}
	}
}

// apply copies flag values onto the session's drafts. Unknown codes are
// rejected so a typo never silently drops a rating.
func (o logOverrides) apply(s *domain.Session) error {
	index := make(map[string]int, len(s.Drafts))
	for i, d := range s.Drafts {
		index[strings.ToUpper(d.Row.Code)] = i
	}
	find := func(code string) (*domain.EntryDraft, error) {
		i, ok := index[strings.ToUpper(strings.TrimSpace(code))]
		if !ok {
			return nil, fmt.Errorf("%w: workout %s has no exercise %q", domain.ErrValidation, s.WorkoutID, code)
		}
		return &s.Drafts[i], nil
	}

	for code, v := range o.rpe {
		d, err := find(code)
		if err != nil {
			return err
		}
		if !domain.ValidRPE(v) {
			return fmt.Errorf("%w: rpe for %s must be %d..%d", domain.ErrValidation, code, domain.MinRPE, domain.MaxRPE)
		}
		d.RPE = v
	}
	for code, v := range o.notes {
		d, err := find(code)
		if err != nil {
			return err
		}
		d.Notes = v
	}
	for _, code := range o.done {
		if strings.EqualFold(strings.TrimSpace(code), "all") {
			for i := range s.Drafts {
				s.Drafts[i].Completed = true
			}
			continue
		}
		d, err := find(code)
		if err != nil {
			return err
		}
		d.Completed = true
	}
	return nil
}

func rowsOf(s *domain.Session) []domain.ExerciseRow {
	rows := make([]domain.ExerciseRow, len(s.Drafts))
	for i, d := range s.Drafts {
		rows[i] = d.Row
	}
	return rows
}
