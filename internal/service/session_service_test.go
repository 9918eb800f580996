package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/testutil"
)

func newTestSessionService(t *testing.T) (*sessionService, *testutil.FakeTemplates, *testutil.MemoryHistory) {
	t.Helper()
	tmpl := testutil.NewTestTemplate("Alex",
		testutil.NewTestRow("1", "A1", "Goblet Squat"),
		testutil.NewTestRow("1", "A2", "Push Up"),
		testutil.NewTestRow("2", "A1", "Deadlift"),
	)
	templates := &testutil.FakeTemplates{Templates: map[string]*domain.Template{"Alex": tmpl}}
	history := testutil.NewMemoryHistory()
	svc := NewSessionService(templates, history).(*sessionService)
	return svc, templates, history
}

func TestSessionService_LoadTemplateUsesDisplayName(t *testing.T) {
	svc, _, _ := newTestSessionService(t)

	tmpl, err := svc.LoadTemplate(context.Background(), domain.NewClient("  alex "))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tmpl.Workouts())
}

func TestSessionService_LoadTemplateFailure(t *testing.T) {
	svc, templates, _ := newTestSessionService(t)
	templates.Err = errors.New("quota exceeded")

	_, err := svc.LoadTemplate(context.Background(), domain.NewClient("alex"))
	assert.ErrorIs(t, err, domain.ErrTemplateLoad)
}

func TestSessionService_StartSessionPrefills(t *testing.T) {
	ctx := context.Background()
	svc, _, history := newTestSessionService(t)
	client := domain.NewClient("alex")
	history.Seed(client.Key, domain.ClientHistory{
		testutil.NewTestEntry("A1", "Goblet Squat", testutil.WithRPE(8), testutil.WithNotes("heels up")),
	})
	tmpl, err := svc.LoadTemplate(ctx, client)
	require.NoError(t, err)

	sess, err := svc.StartSession(ctx, client, tmpl, "1", time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, sess.Drafts, 2)
	assert.Equal(t, testutil.Day(2024, time.March, 10), sess.Date)
	assert.Equal(t, 8, sess.Drafts[0].RPE)
	assert.Equal(t, "heels up", sess.Drafts[0].Notes)
	assert.Equal(t, domain.DefaultRPE, sess.Drafts[1].RPE)
	assert.Empty(t, sess.Drafts[1].Notes)
}

func TestSessionService_StartSessionUnknownWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSessionService(t)
	client := domain.NewClient("alex")
	tmpl, err := svc.LoadTemplate(ctx, client)
	require.NoError(t, err)

	_, err = svc.StartSession(ctx, client, tmpl, "9", time.Now())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_StartSessionHistoryFailureFallsBack(t *testing.T) {
	ctx := context.Background()
	svc, _, history := newTestSessionService(t)
	history.LoadErr = errors.New("corrupt workbook")
	client := domain.NewClient("alex")
	tmpl, err := svc.LoadTemplate(ctx, client)
	require.NoError(t, err)

	sess, err := svc.StartSession(ctx, client, tmpl, "1", time.Now())
	require.NoError(t, err)
	require.ErrorIs(t, sess.HistoryErr, domain.ErrHistoryRead)
	assert.Contains(t, sess.HistoryErr.Error(), "corrupt workbook")
	for _, d := range sess.Drafts {
		assert.Equal(t, domain.DefaultRPE, d.RPE)
		assert.Nil(t, d.PrefilledFrom)
	}
}

func TestSessionService_SaveAppends(t *testing.T) {
	ctx := context.Background()
	svc, _, history := newTestSessionService(t)
	client := domain.NewClient("alex")
	prior := testutil.NewTestEntry("Z9", "Old Lift", testutil.WithSource("RPE", "??"))
	history.Seed(client.Key, domain.ClientHistory{prior})
	tmpl, err := svc.LoadTemplate(ctx, client)
	require.NoError(t, err)

	sess, err := svc.StartSession(ctx, client, tmpl, "1", testutil.Day(2024, time.March, 11))
	require.NoError(t, err)
	sess.Drafts[0].RPE = 9
	sess.Drafts[0].Completed = true

	merged, err := svc.Save(ctx, sess)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, prior, merged[0])
	assert.Equal(t, "Alex", merged[1].ClientID)
	assert.Equal(t, 9, merged[1].RPE)
	assert.True(t, merged[1].Completed)

	stored, err := svc.History(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, merged, stored)
}

func TestSessionService_SaveFirstSessionCreatesHistory(t *testing.T) {
	ctx := context.Background()
	svc, _, history := newTestSessionService(t)
	client := domain.NewClient("sam")
	sess := &domain.Session{
		Client:    client,
		WorkoutID: "1",
		Date:      testutil.Day(2024, time.March, 11),
		Drafts:    []domain.EntryDraft{{Row: testutil.NewTestRow("1", "A1", "Squat"), RPE: 6}},
	}

	merged, err := svc.Save(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, merged, 1)
	assert.Equal(t, 1, history.Replaces)
}

func TestSessionService_SaveRejectsBadRPE(t *testing.T) {
	svc, _, history := newTestSessionService(t)
	sess := &domain.Session{
		Client: domain.NewClient("alex"),
		Drafts: []domain.EntryDraft{{Row: testutil.NewTestRow("1", "A1", "Squat"), RPE: 11}},
	}

	_, err := svc.Save(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, history.Replaces)
}

func TestSessionService_SaveReadFailureIsPersistenceError(t *testing.T) {
	svc, _, history := newTestSessionService(t)
	history.LoadErr = errors.New("permission denied")
	sess := &domain.Session{
		Client: domain.NewClient("alex"),
		Drafts: []domain.EntryDraft{{Row: testutil.NewTestRow("1", "A1", "Squat"), RPE: 5}},
	}

	_, err := svc.Save(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, history.Replaces)
}

func TestSessionService_SaveWriteFailure(t *testing.T) {
	svc, _, history := newTestSessionService(t)
	history.ReplaceErr = errors.New("disk full")
	sess := &domain.Session{
		Client: domain.NewClient("alex"),
		Drafts: []domain.EntryDraft{{Row: testutil.NewTestRow("1", "A1", "Squat"), RPE: 5}},
	}

	_, err := svc.Save(context.Background(), sess)
	assert.ErrorIs(t, err, domain.ErrPersistence)
}

func TestSessionService_ConcurrentSavesKeepEveryEntry(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestSessionService(t)
	client := domain.NewClient("alex")

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess := &domain.Session{
				Client:    client,
				WorkoutID: "1",
				Date:      testutil.Day(2024, time.March, 1+i%28),
				Drafts: []domain.EntryDraft{{
					Row: testutil.NewTestRow("1", fmt.Sprintf("A%d", i), "Squat"),
					RPE: 1 + i%10,
				}},
			}
			_, err := svc.Save(ctx, sess)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := svc.History(ctx, client)
	require.NoError(t, err)
	assert.Len(t, stored, n)
}
