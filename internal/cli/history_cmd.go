package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bodylab/trainlog/internal/cli/formatter"
	"github.com/bodylab/trainlog/internal/logbook"
)

func newHistoryCmd(app *App) *cobra.Command {
	var who clientFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your most recent log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := who.login(ctx, app)
			if err != nil {
				return err
			}
			h, err := app.listHistoryUseCase().History(ctx, client)
			if err != nil {
				return err
			}
			n := limit
			if !cmd.Flags().Changed("limit") {
				n = app.RecentLimit
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHistory(logbook.Latest(h, n), app.now()))
			return nil
		},
	}

	who.register(cmd.Flags())
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of entries to show (0 for all)")
	return cmd
}
