package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(budgetRepo BudgetRepository) (*sessionService, *fakeSessions) {
	sessions := newFakeSessions()
	svc := NewSessionService(sessions, budgetRepo, newTestLogger()).(*sessionService)
	svc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return svc, sessions
}

func TestCreateSession(t *testing.T) {
	svc, _ := newTestSessionService(staticBudget{})
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.TabMap, session.ActiveTab)
	assert.Empty(t, session.Reports)
	assert.Nil(t, session.BudgetFilter)
	require.Len(t, session.Transcript, 1)
	assert.Equal(t, models.ChatRoleAssistant, session.Transcript[0].Role)
	assert.Contains(t, session.Transcript[0].Content, "Hello Councilman")

	fetched, err := svc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, fetched.ID)
}

func TestGetSession_NotFound(t *testing.T) {
	svc, _ := newTestSessionService(staticBudget{})

	_, err := svc.GetSession(context.Background(), uuid.New())

	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetTab(t *testing.T) {
	svc, sessions := newTestSessionService(staticBudget{})
	ctx := context.Background()
	id := sessions.seed()

	session, err := svc.SetTab(ctx, id, models.TabSpatial)
	require.NoError(t, err)
	assert.Equal(t, models.TabSpatial, session.ActiveTab)

	_, err = svc.SetTab(ctx, id, models.Tab("reports"))
	require.ErrorIs(t, err, ErrInvalidTab)
}

func TestToggleBudgetFilter(t *testing.T) {
	svc, sessions := newTestSessionService(staticBudget{})
	ctx := context.Background()
	id := sessions.seed()

	view, err := svc.ToggleBudgetFilter(ctx, id, models.BudgetStatusPlanned)
	require.NoError(t, err)
	require.NotNil(t, view.Filter)
	assert.Equal(t, models.BudgetStatusPlanned, *view.Filter)
	assert.Len(t, view.Items, 2)
	// Сводка всегда считается по всей таблице
	assert.Equal(t, 8200000.0, view.Stats.TotalAllocated)

	view, err = svc.ToggleBudgetFilter(ctx, id, models.BudgetStatusOverBudget)
	require.NoError(t, err)
	assert.Equal(t, models.BudgetStatusOverBudget, *view.Filter)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Parks", view.Items[0].Department)

	view, err = svc.ToggleBudgetFilter(ctx, id, models.BudgetStatusOverBudget)
	require.NoError(t, err)
	assert.Nil(t, view.Filter)
	assert.Len(t, view.Items, 7)

	stored, err := svc.GetBudgetView(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, stored.Filter)

	_, err = svc.ToggleBudgetFilter(ctx, id, models.BudgetStatus("Cancelled"))
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestGetBudget(t *testing.T) {
	svc, _ := newTestSessionService(staticBudget{})

	view, err := svc.GetBudget(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Items, 7)
	assert.Equal(t, 2, view.Stats.ActiveCount)
	assert.Equal(t, 1, view.Stats.OverBudgetCount)

	svc, _ = newTestSessionService(staticBudget{err: errors.New("db down")})
	_, err = svc.GetBudget(context.Background())
	require.Error(t, err)
}
