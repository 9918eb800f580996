package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bodylab/trainlog/internal/cli/formatter"
	"github.com/bodylab/trainlog/internal/contract"
)

func newSummaryCmd(app *App) *cobra.Command {
	var who clientFlags
	var days, last int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize logged workouts per day",
		Long: `Summarize logged workouts per workout and day: how many exercises were
completed and the average RPE. By default covers the configured number of
days; --last summarizes your most recent entries instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("days") && cmd.Flags().Changed("last") {
				return fmt.Errorf("use either --days or --last, not both")
			}
			if days < 0 || last < 0 {
				return fmt.Errorf("--days and --last must not be negative")
			}
			ctx := cmd.Context()
			client, err := who.login(ctx, app)
			if err != nil {
				return err
			}

			now := app.now()
			req := contract.NewSummaryRequest(client).WithDays(app.SummaryDays)
			req.Now = &now
			switch {
			case cmd.Flags().Changed("last"):
				req.Window = 0
				req.Last = last
			case cmd.Flags().Changed("days"):
				req = req.WithDays(days)
			}

			resp, err := app.summarizeUseCase().Summarize(ctx, req)
			if err != nil {
				return err
			}

			if interactive && app.Interactive {
				_, err := tea.NewProgram(newSummaryView(resp), tea.WithContext(ctx)).Run()
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			return nil
		},
	}

	who.register(cmd.Flags())
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to cover (0 for all)")
	cmd.Flags().IntVar(&last, "last", 0, "Summarize the most recent N entries instead of a date window")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the summary in a scrollable table")
	return cmd
}
