package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bodylab/trainlog/internal/access"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/repository"
)

// Day returns midnight UTC for the given date.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Entry options
type EntryOption func(*domain.LogEntry)

func WithDate(d time.Time) EntryOption {
	return func(e *domain.LogEntry) {
		e.Date = d
	}
}

func WithWorkout(id string) EntryOption {
	return func(e *domain.LogEntry) {
		e.WorkoutID = id
	}
}

func WithRPE(rpe int) EntryOption {
	return func(e *domain.LogEntry) {
		e.RPE = rpe
	}
}

func WithNotes(notes string) EntryOption {
	return func(e *domain.LogEntry) {
		e.Notes = notes
	}
}

func WithCompleted(done bool) EntryOption {
	return func(e *domain.LogEntry) {
		e.Completed = done
	}
}

func WithSource(col, raw string) EntryOption {
	return func(e *domain.LogEntry) {
		if e.Source == nil {
			e.Source = make(map[string]string)
		}
		e.Source[col] = raw
	}
}

func NewTestEntry(code, name string, opts ...EntryOption) domain.LogEntry {
	e := domain.LogEntry{
		ClientID:        "Alex",
		Date:            Day(2024, time.March, 4),
		WorkoutID:       "1",
		ExerciseID:      code,
		MovementPattern: "Squat",
		ExerciseName:    name,
		Sets:            "3",
		Reps:            "8",
		RestSeconds:     "90",
		RPE:             domain.DefaultRPE,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Template rows

func NewTestRow(workout, code, name string) domain.ExerciseRow {
	return domain.ExerciseRow{
		WorkoutID:       workout,
		Code:            code,
		MovementPattern: "Hinge",
		Name:            name,
		Sets:            "3",
		Reps:            "10",
		RestSeconds:     "60",
		TempoRaw:        "3,1,1",
	}
}

func NewTestTemplate(client string, rows ...domain.ExerciseRow) *domain.Template {
	return &domain.Template{Client: client, Rows: rows}
}

// FakeTemplates is an in-memory repository.TemplateProvider.
type FakeTemplates struct {
	mu        sync.Mutex
	Templates map[string]*domain.Template
	Codes     access.CodeBook
	Quotes    map[int]string
	Err       error
	Calls     int
}

var _ repository.TemplateProvider = (*FakeTemplates)(nil)

func (f *FakeTemplates) LoadTemplate(_ context.Context, clientName string) (*domain.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls++
	if f.Err != nil {
		return nil, f.Err
	}
	t, ok := f.Templates[clientName]
	if !ok {
		return nil, fmt.Errorf("tab %q: %w", clientName, repository.ErrNotFound)
	}
	return t, nil
}

func (f *FakeTemplates) AccessCodes(context.Context) (access.CodeBook, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Codes, nil
}

func (f *FakeTemplates) WeeklyQuote(_ context.Context, week int) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return f.Quotes[week], nil
}

// MemoryHistory is an in-memory repository.HistoryStore. Set LoadErr or
// ReplaceErr to inject failures; NextLoadErr fails only the next Load.
type MemoryHistory struct {
	mu          sync.Mutex
	data        map[string]domain.ClientHistory
	LoadErr     error
	NextLoadErr error
	ReplaceErr  error
	Replaces    int
}

var _ repository.HistoryStore = (*MemoryHistory)(nil)

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{data: make(map[string]domain.ClientHistory)}
}

// Seed stores h for clientKey without counting as a Replace.
func (m *MemoryHistory) Seed(clientKey string, h domain.ClientHistory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[clientKey] = append(domain.ClientHistory(nil), h...)
}

func (m *MemoryHistory) Load(_ context.Context, clientKey string) (domain.ClientHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.NextLoadErr; err != nil {
		m.NextLoadErr = nil
		return nil, err
	}
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	h, ok := m.data[clientKey]
	if !ok {
		return nil, fmt.Errorf("history for %q: %w", clientKey, repository.ErrNotFound)
	}
	return append(domain.ClientHistory(nil), h...), nil
}

func (m *MemoryHistory) Replace(_ context.Context, clientKey string, h domain.ClientHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Replaces++
	m.data[clientKey] = append(domain.ClientHistory(nil), h...)
	return nil
}
