package service

import (
	"context"
	"errors"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/repository"
)

// loadHistory reads a client's history, mapping "never saved" to empty.
func loadHistory(ctx context.Context, store repository.HistoryStore, client domain.Client) (domain.ClientHistory, error) {
	h, err := store.Load(ctx, client.Key)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.ClientHistory{}, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func observe(ctx context.Context, obs UseCaseObserver, name string, started time.Time, err error, fields map[string]any) {
	obs.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
