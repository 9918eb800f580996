package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/bodylab/trainlog/internal/app"
	"github.com/bodylab/trainlog/internal/service"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Access   service.AccessService
	Sessions service.SessionService
	Summary  service.SummaryService

	// Optional use-case overrides. When nil, the services above are used.
	VerifyAccess app.VerifyAccessUseCase
	LoadTemplate app.LoadTemplateUseCase
	StartSession app.StartSessionUseCase
	SaveSession  app.SaveSessionUseCase
	ListHistory  app.ListHistoryUseCase
	Summarize    app.SummarizeUseCase

	// SummaryDays is the window of the summary printed after a save and the
	// default for `summary`.
	SummaryDays int
	// RecentLimit is the default entry count for `history`.
	RecentLimit int
	// Interactive enables huh forms for anything not given as a flag.
	Interactive bool
	// Now is the clock; nil means time.Now.
	Now func() time.Time
	// Confirm asks a yes/no question; nil runs a huh confirm form.
	Confirm func(ctx context.Context, title string) (bool, error)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) confirm(ctx context.Context, title string) (bool, error) {
	if a.Confirm != nil {
		return a.Confirm(ctx, title)
	}
	ok := true
	if err := wizardConfirm(title, &ok).RunWithContext(ctx); err != nil {
		return false, err
	}
	return ok, nil
}

// NewRootCmd creates the top-level "trainlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "trainlog",
		Short:         "Log coached workouts and review progress",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLogCmd(app),
		newWorkoutsCmd(app),
		newSummaryCmd(app),
		newHistoryCmd(app),
	)

	return root
}
