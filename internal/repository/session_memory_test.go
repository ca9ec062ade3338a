package repository

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		ActiveTab: models.TabMap,
		Reports:   []models.IncidentReport{},
		Transcript: []models.ChatMessage{
			{ID: uuid.New(), Role: models.ChatRoleAssistant, Content: "Hello"},
		},
	}
}

func TestMemorySessionRepository_CreateGetUpdate(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()
	session := newSession()

	require.NoError(t, repo.Create(ctx, session))
	require.Error(t, repo.Create(ctx, session))

	updated, err := repo.Update(ctx, session.ID, func(s *models.Session) error {
		s.AppendReport(models.IncidentReport{ID: uuid.New(), Type: "Pothole"})
		s.ToggleBudgetFilter(models.BudgetStatusPlanned)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, updated.Reports, 1)
	assert.False(t, updated.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, got.Reports, 1)
	require.NotNil(t, got.BudgetFilter)
	assert.Equal(t, models.BudgetStatusPlanned, *got.BudgetFilter)
}

func TestMemorySessionRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()
	session := newSession()
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	got.Transcript[0].Content = "tampered"
	got.AppendReport(models.IncidentReport{Type: "Flooding"})

	again, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", again.Transcript[0].Content)
	assert.Empty(t, again.Reports)
}

func TestMemorySessionRepository_FailedUpdateIsDiscarded(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	ctx := context.Background()
	session := newSession()
	require.NoError(t, repo.Create(ctx, session))

	boom := errors.New("boom")
	_, err := repo.Update(ctx, session.ID, func(s *models.Session) error {
		s.ActiveTab = models.TabBudget
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TabMap, got.ActiveTab)
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	ctx := context.Background()
	session := newSession()
	require.NoError(t, repo.Create(ctx, session))

	// Запись продлевает срок жизни
	clock = clock.Add(50 * time.Second)
	_, err := repo.Update(ctx, session.ID, func(*models.Session) error { return nil })
	require.NoError(t, err)

	clock = clock.Add(50 * time.Second)
	_, err = repo.Get(ctx, session.ID)
	require.NoError(t, err)

	clock = clock.Add(time.Minute)
	_, err = repo.Get(ctx, session.ID)
	require.ErrorIs(t, err, service.ErrSessionNotFound)

	_, err = repo.Update(ctx, uuid.New(), func(*models.Session) error { return nil })
	require.ErrorIs(t, err, service.ErrSessionNotFound)
}

func TestMemorySessionRepository_PruneExpired(t *testing.T) {
	repo := NewMemorySessionRepository(time.Hour)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, repo.Create(ctx, newSession()))
	}

	clock = clock.Add(48 * time.Hour)
	fresh := newSession()
	require.NoError(t, repo.Create(ctx, fresh))

	assert.Equal(t, 1000, repo.PruneExpired())
	assert.Len(t, repo.sessions, 1)

	_, err := repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
}

func TestMemorySessionRepository_StartJanitor(t *testing.T) {
	repo := NewMemorySessionRepository(time.Minute)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, repo.Create(ctx, newSession()))
	}
	// Часы переводятся до запуска уборщика, дальше их читает только он
	clock = clock.Add(time.Hour)

	janitorCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	repo.StartJanitor(janitorCtx, 5*time.Millisecond, logger)

	assert.Eventually(t, func() bool {
		repo.mu.Lock()
		defer repo.mu.Unlock()
		return len(repo.sessions) == 0
	}, time.Second, 5*time.Millisecond)
}
