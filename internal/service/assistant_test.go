package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shenikar/infra_vision/internal/analysis/mocks"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssistantService(t *testing.T, budgetRepo BudgetRepository) (*assistantService, *fakeSessions, *mocks.MockProvider) {
	ctrl := gomock.NewController(t)
	sessions := newFakeSessions()
	provider := mocks.NewMockProvider(ctrl)
	svc := NewAssistantService(sessions, budgetRepo, provider, newTestLogger()).(*assistantService)
	return svc, sessions, provider
}

func TestAskBudget(t *testing.T) {
	testCases := []struct {
		name          string
		budgetErr     error
		answer        string
		providerErr   error
		expectCall    bool
		expectedReply string
	}{
		{
			name:          "answer appended",
			answer:        "**Parks** is over budget.",
			expectCall:    true,
			expectedReply: "**Parks** is over budget.",
		},
		{
			name:          "provider failure becomes message",
			providerErr:   errors.New("network unreachable"),
			expectCall:    true,
			expectedReply: "Error analyzing budget data.",
		},
		{
			name:          "empty answer",
			answer:        "  ",
			expectCall:    true,
			expectedReply: "Could not generate an answer.",
		},
		{
			name:          "budget source failure",
			budgetErr:     errors.New("connection refused"),
			expectedReply: "Error analyzing budget data.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Подготовка
			svc, sessions, provider := newTestAssistantService(t, staticBudget{err: tc.budgetErr})
			ctx := context.Background()
			sessionID := sessions.seed()

			// Ожидания
			if tc.expectCall {
				provider.EXPECT().
					AnswerQuery(ctx, budget.Seed(), "Which projects are over budget?").
					Return(tc.answer, tc.providerErr).
					Times(1)
			}

			// Действие
			transcript, err := svc.AskBudget(ctx, sessionID, "Which projects are over budget?")

			// Проверки
			require.NoError(t, err)
			require.Len(t, transcript, 2)
			assert.Equal(t, models.ChatRoleUser, transcript[0].Role)
			assert.Equal(t, "Which projects are over budget?", transcript[0].Content)
			assert.Equal(t, models.ChatRoleAssistant, transcript[1].Role)
			assert.Equal(t, tc.expectedReply, transcript[1].Content)
			assert.NotEqual(t, transcript[0].ID, transcript[1].ID)
		})
	}
}

func TestAskBudget_EmptyQuery(t *testing.T) {
	svc, sessions, _ := newTestAssistantService(t, staticBudget{})
	sessionID := sessions.seed()

	_, err := svc.AskBudget(context.Background(), sessionID, " \n\t")

	require.ErrorIs(t, err, ErrEmptyQuery)
	transcript, err := svc.GetTranscript(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Empty(t, transcript)
	assert.Zero(t, sessions.updates)
}

func TestAskBudget_KeepsRawQuery(t *testing.T) {
	svc, sessions, provider := newTestAssistantService(t, staticBudget{})
	sessionID := sessions.seed()
	query := "  total for Parks?  "

	provider.EXPECT().AnswerQuery(gomock.Any(), gomock.Any(), query).Return("$800,000", nil)

	transcript, err := svc.AskBudget(context.Background(), sessionID, query)

	require.NoError(t, err)
	assert.Equal(t, query, transcript[0].Content)
	assert.True(t, strings.HasPrefix(transcript[1].Content, "$800"))
}
