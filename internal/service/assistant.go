package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/analysis"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	budgetErrorMessage    = "Error analyzing budget data."
	budgetNoAnswerMessage = "Could not generate an answer."
)

type assistantService struct {
	sessions SessionRepository
	budget   BudgetRepository
	provider analysis.Provider
	logger   *logrus.Logger
}

func NewAssistantService(sessions SessionRepository, budget BudgetRepository, provider analysis.Provider, logger *logrus.Logger) AssistantService {
	return &assistantService{
		sessions: sessions,
		budget:   budget,
		provider: provider,
		logger:   logger,
	}
}

// AskBudget добавляет вопрос в переписку и ответ ассистента. Сбой внешнего
// сервиса превращается в текстовое сообщение и никогда не возвращается вызывающему.
func (s *assistantService) AskBudget(ctx context.Context, sessionID uuid.UUID, query string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "assistant",
		"method":     "AskBudget",
		"session_id": sessionID,
	})

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) error {
		sess.AppendMessage(models.ChatMessage{ID: uuid.New(), Role: models.ChatRoleUser, Content: query})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("service: could not append question: %w", err)
	}

	answer := s.answer(ctx, log, query)

	session, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) error {
		sess.AppendMessage(models.ChatMessage{ID: uuid.New(), Role: models.ChatRoleAssistant, Content: answer})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not append answer: %w", err)
	}
	return session.Transcript, nil
}

func (s *assistantService) answer(ctx context.Context, log *logrus.Entry, query string) string {
	items, err := s.budget.ListBudgetItems(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load budget items")
		return budgetErrorMessage
	}

	answer, err := s.provider.AnswerQuery(ctx, items, query)
	if err != nil {
		log.WithError(err).Error("Budget assistant request failed")
		return budgetErrorMessage
	}
	if strings.TrimSpace(answer) == "" {
		return budgetNoAnswerMessage
	}
	return answer
}

// GetTranscript возвращает переписку сессии
func (s *assistantService) GetTranscript(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return session.Transcript, nil
}
