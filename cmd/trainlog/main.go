package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bodylab/trainlog/internal/cli"
	"github.com/bodylab/trainlog/internal/config"
	"github.com/bodylab/trainlog/internal/db"
	"github.com/bodylab/trainlog/internal/gsheets"
	"github.com/bodylab/trainlog/internal/repository"
	"github.com/bodylab/trainlog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.LoadConfig("")
	if err != nil {
		return err
	}

	observer := service.UseCaseObserver(service.NoopUseCaseObserver{})
	if cfg.LogCalls {
		var w io.Writer = os.Stderr
		if cfg.LogFile != "" {
			lj := &lumberjack.Logger{
				Filename:  cfg.LogFile,
				MaxSize:   10, // megabytes
				MaxAge:    90, // days
				LocalTime: false,
				Compress:  true,
			}
			defer lj.Close()
			w = lj
		}
		observer = service.NewLogUseCaseObserver(w)
	}

	templates, err := openTemplates(ctx, cfg)
	if err != nil {
		return err
	}

	history, closeHistory, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer closeHistory()

	sessions := service.NewSessionService(templates, history, observer)
	app := &cli.App{
		Access:      service.NewAccessService(templates, cfg.RequireCode, observer),
		Sessions:    sessions,
		Summary:     service.NewSummaryService(sessions, observer),
		SummaryDays: cfg.SummaryDays,
		RecentLimit: cfg.RecentLimit,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func openTemplates(ctx context.Context, cfg config.Config) (repository.TemplateProvider, error) {
	if cfg.TemplateSource == config.SourceXLSX {
		return repository.NewWorkbookTemplates(cfg.TemplatePath, cfg.CodesTab, cfg.QuotesTab), nil
	}
	client, err := gsheets.NewClient(ctx, cfg.CredentialsPath, cfg.SheetKey, gsheets.Tabs{
		Codes:  cfg.CodesTab,
		Quotes: cfg.QuotesTab,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to Google Sheets: %w", err)
	}
	return client, nil
}

func openHistory(cfg config.Config) (repository.HistoryStore, func(), error) {
	if cfg.HistoryBackend != config.BackendSQLite {
		return repository.NewXLSXHistoryStore(cfg.LogDir), func() {}, nil
	}
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return repository.NewSQLiteHistoryStore(database), func() { closeDB(database) }, nil
}

func closeDB(database *sql.DB) {
	if err := database.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: closing database: %v\n", err)
	}
}
