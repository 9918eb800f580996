package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bodylab/trainlog/internal/access"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/repository"
)

type accessService struct {
	templates   repository.TemplateProvider
	requireCode bool
	observer    UseCaseObserver

	mu    sync.Mutex
	codes access.CodeBook
}

// NewAccessService checks client codes against the provider's code list,
// fetched once and cached. With requireCode false any non-blank name that is
// usable as a folder name is accepted.
func NewAccessService(templates repository.TemplateProvider, requireCode bool, observers ...UseCaseObserver) AccessService {
	return &accessService{
		templates:   templates,
		requireCode: requireCode,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *accessService) Verify(ctx context.Context, name, code string) (client domain.Client, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.observer, "verify_access", started, err, map[string]any{"client": domain.NormalizeName(name)})
	}()

	if !s.requireCode {
		client = domain.NewClient(name)
		if client.IsZero() || !domain.ValidKey(client.Key) {
			return domain.Client{}, domain.ErrAccessDenied
		}
		return client, nil
	}

	book, err := s.codeBook(ctx)
	if err != nil {
		return domain.Client{}, err
	}
	return book.Verify(name, code)
}

func (s *accessService) codeBook(ctx context.Context) (access.CodeBook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codes != nil {
		return s.codes, nil
	}
	book, err := s.templates.AccessCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: loading access codes: %w", domain.ErrTemplateLoad, err)
	}
	s.codes = book
	return book, nil
}

// WeeklyQuote returns the quote for now's ISO week, or "" when the quotes
// tab is missing or has no entry.
func (s *accessService) WeeklyQuote(ctx context.Context, now time.Time) string {
	_, week := now.ISOWeek()
	q, err := s.templates.WeeklyQuote(ctx, week)
	if err != nil {
		observe(ctx, s.observer, "weekly_quote", time.Now(), err, map[string]any{"week": week})
		return ""
	}
	return q
}
