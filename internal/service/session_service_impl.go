package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/logbook"
	"github.com/bodylab/trainlog/internal/repository"
)

type sessionService struct {
	templates repository.TemplateProvider
	history   repository.HistoryStore
	locks     *clientLocks
	observer  UseCaseObserver
}

func NewSessionService(templates repository.TemplateProvider, history repository.HistoryStore, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		templates: templates,
		history:   history,
		locks:     newClientLocks(),
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) LoadTemplate(ctx context.Context, client domain.Client) (tmpl *domain.Template, err error) {
	started := time.Now()
	defer func() {
		fields := map[string]any{"client": client.Key}
		if tmpl != nil {
			fields["rows"] = len(tmpl.Rows)
		}
		observe(ctx, s.observer, "load_template", started, err, fields)
	}()

	tmpl, err = s.templates.LoadTemplate(ctx, client.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTemplateLoad, err)
	}
	return tmpl, nil
}

func (s *sessionService) StartSession(ctx context.Context, client domain.Client, tmpl *domain.Template, workoutID string, date time.Time) (*domain.Session, error) {
	started := time.Now()
	fields := map[string]any{"client": client.Key, "workout": workoutID}

	rows, err := logbook.SelectWorkout(tmpl, workoutID)
	if err != nil {
		observe(ctx, s.observer, "start_session", started, err, fields)
		return nil, err
	}

	var historyErr error
	history, err := loadHistory(ctx, s.history, client)
	if err != nil {
		// Drafts fall back to defaults rather than blocking the log.
		historyErr = fmt.Errorf("%w: %w", domain.ErrHistoryRead, err)
		fields["history_error"] = historyErr.Error()
		history = nil
	}

	drafts, err := logbook.BuildDrafts(rows, history)
	if err != nil {
		observe(ctx, s.observer, "start_session", started, err, fields)
		return nil, err
	}
	fields["drafts"] = len(drafts)
	observe(ctx, s.observer, "start_session", started, nil, fields)

	return &domain.Session{
		Client:     client,
		WorkoutID:  workoutID,
		Date:       domain.Day(date),
		Drafts:     drafts,
		HistoryErr: historyErr,
	}, nil
}

func (s *sessionService) Save(ctx context.Context, sess *domain.Session) (merged domain.ClientHistory, err error) {
	started := time.Now()
	fields := map[string]any{}
	defer func() { observe(ctx, s.observer, "save_session", started, err, fields) }()

	if sess == nil || sess.Client.IsZero() {
		return nil, fmt.Errorf("%w: session has no client", domain.ErrValidation)
	}
	fields["client"] = sess.Client.Key
	fields["workout"] = sess.WorkoutID

	entries, err := sess.Entries()
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(sess.Client.Key)
	defer unlock()

	existing, err := loadHistory(ctx, s.history, sess.Client)
	if err != nil {
		return nil, fmt.Errorf("%w: reading history: %w", domain.ErrPersistence, err)
	}

	merged = logbook.Merge(existing, entries)
	if err := s.history.Replace(ctx, sess.Client.Key, merged); err != nil {
		return nil, fmt.Errorf("%w: writing history: %w", domain.ErrPersistence, err)
	}
	fields["appended"] = len(entries)
	fields["total"] = len(merged)
	return merged, nil
}

func (s *sessionService) History(ctx context.Context, client domain.Client) (domain.ClientHistory, error) {
	h, err := loadHistory(ctx, s.history, client)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHistoryRead, err)
	}
	return h, nil
}
