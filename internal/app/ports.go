package app

import (
	"context"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
)

type LoadTemplateUseCase interface {
	LoadTemplate(ctx context.Context, client domain.Client) (*domain.Template, error)
}

type StartSessionUseCase interface {
	StartSession(ctx context.Context, client domain.Client, tmpl *domain.Template, workoutID string, date time.Time) (*domain.Session, error)
}

type SaveSessionUseCase interface {
	Save(ctx context.Context, s *domain.Session) (domain.ClientHistory, error)
}

type ListHistoryUseCase interface {
	History(ctx context.Context, client domain.Client) (domain.ClientHistory, error)
}

type SummarizeUseCase interface {
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResponse, error)
}

type VerifyAccessUseCase interface {
	Verify(ctx context.Context, name, code string) (domain.Client, error)
}
