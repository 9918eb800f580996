package service

import (
	"context"
	"time"

	"github.com/bodylab/trainlog/internal/contract"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/logbook"
)

type summaryService struct {
	sessions SessionService
	observer UseCaseObserver
}

func NewSummaryService(sessions SessionService, observers ...UseCaseObserver) SummaryService {
	return &summaryService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *summaryService) Summarize(ctx context.Context, req contract.SummaryRequest) (resp *contract.SummaryResponse, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{"client": req.Client.Key}
		if resp != nil {
			fields["rows"] = len(resp.Rows)
		}
		observe(ctx, s.observer, "summarize", started, err, fields)
	}()

	history, err := s.sessions.History(ctx, req.Client)
	if err != nil {
		return nil, err
	}
	return SummarizeHistory(history, req), nil
}

// SummarizeHistory builds a response from an already loaded history, e.g.
// the merged result of a save.
func SummarizeHistory(history domain.ClientHistory, req contract.SummaryRequest) *contract.SummaryResponse {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	selected := history
	window := req.Window
	if req.Last > 0 {
		selected = logbook.Latest(history, req.Last)
		window = 0
	}

	undated := 0
	for _, e := range selected {
		if !e.HasDate() {
			undated++
		}
	}

	return &contract.SummaryResponse{
		GeneratedAt: now,
		Client:      req.Client,
		Window:      window,
		Rows:        logbook.Summarize(selected, logbook.SummaryOptions{Window: window, Now: now}),
		EntryCount:  len(selected),
		Undated:     undated,
	}
}
