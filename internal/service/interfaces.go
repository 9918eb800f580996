package service

import (
	"context"
	"time"

	"github.com/bodylab/trainlog/internal/contract"
	"github.com/bodylab/trainlog/internal/domain"
)

type SessionService interface {
	LoadTemplate(ctx context.Context, client domain.Client) (*domain.Template, error)
	StartSession(ctx context.Context, client domain.Client, tmpl *domain.Template, workoutID string, date time.Time) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) (domain.ClientHistory, error)
	History(ctx context.Context, client domain.Client) (domain.ClientHistory, error)
}

type SummaryService interface {
	Summarize(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}

type AccessService interface {
	Verify(ctx context.Context, name, code string) (domain.Client, error)
	WeeklyQuote(ctx context.Context, now time.Time) string
}
