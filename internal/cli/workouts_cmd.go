package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bodylab/trainlog/internal/cli/formatter"
)

func newWorkoutsCmd(app *App) *cobra.Command {
	var who clientFlags
	var workoutID string

	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "List the workouts in your program",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := who.login(ctx, app)
			if err != nil {
				return err
			}
			tmpl, err := app.loadTemplateUseCase().LoadTemplate(ctx, client)
			if err != nil {
				return err
			}
			if workoutID != "" {
				rows := tmpl.RowsFor(workoutID)
				if len(rows) == 0 {
					return fmt.Errorf("no exercises found for workout %q", workoutID)
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatOverview(workoutID, rows))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatWorkouts(tmpl))
			return nil
		},
	}

	who.register(cmd.Flags())
	cmd.Flags().StringVar(&workoutID, "workout", "", "Show the exercises of one workout")
	return cmd
}
