package repository

import (
	"context"
	"errors"

	"github.com/bodylab/trainlog/internal/access"
	"github.com/bodylab/trainlog/internal/domain"
)

// ErrNotFound indicates nothing has been stored yet for the requested key.
var ErrNotFound = errors.New("not found")

// HistoryStore persists one ClientHistory per client key.
type HistoryStore interface {
	// Load returns the stored history in stored order, or an error wrapping
	// ErrNotFound when the client has never saved.
	Load(ctx context.Context, clientKey string) (domain.ClientHistory, error)
	// Replace atomically swaps the stored history for h.
	Replace(ctx context.Context, clientKey string, h domain.ClientHistory) error
}

// TemplateProvider reads the coach-maintained spreadsheet.
type TemplateProvider interface {
	// LoadTemplate returns the exercise table from the client's tab, named
	// by the client's display name.
	LoadTemplate(ctx context.Context, clientName string) (*domain.Template, error)
	// AccessCodes returns the client code list.
	AccessCodes(ctx context.Context) (access.CodeBook, error)
	// WeeklyQuote returns the quote for an ISO week number, "" if none.
	WeeklyQuote(ctx context.Context, week int) (string, error)
}
