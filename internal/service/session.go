package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
)

const welcomeMessage = "Hello Councilman. I have loaded the FY2024 budget data for District 30. How can I assist you? You can ask about cost overruns, specific departments, or project statuses."

type sessionService struct {
	sessions SessionRepository
	budget   BudgetRepository
	logger   *logrus.Logger
	now      func() time.Time
}

func NewSessionService(sessions SessionRepository, budget BudgetRepository, logger *logrus.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		budget:   budget,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateSession создает сессию с приветствием ассистента и вкладкой карты
func (s *sessionService) CreateSession(ctx context.Context) (*models.Session, error) {
	now := s.now()
	session := &models.Session{
		ID:        uuid.New(),
		ActiveTab: models.TabMap,
		Reports:   []models.IncidentReport{},
		Transcript: []models.ChatMessage{{
			ID:      uuid.New(),
			Role:    models.ChatRoleAssistant,
			Content: welcomeMessage,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		s.logger.WithError(err).WithField("method", "CreateSession").Error("Failed to create session in repository")
		return nil, fmt.Errorf("service: could not create session: %w", err)
	}

	s.logger.WithField("session_id", session.ID).Info("Session created")
	return session, nil
}

// GetSession возвращает снимок сессии
func (s *sessionService) GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return session, nil
}

// SetTab переключает активную вкладку
func (s *sessionService) SetTab(ctx context.Context, id uuid.UUID, tab models.Tab) (*models.Session, error) {
	switch tab {
	case models.TabMap, models.TabBudget, models.TabSpatial:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTab, tab)
	}

	session, err := s.sessions.Update(ctx, id, func(sess *models.Session) error {
		sess.ActiveTab = tab
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not set tab: %w", err)
	}
	return session, nil
}

// ToggleBudgetFilter включает, заменяет или снимает фильтр по статусу
func (s *sessionService) ToggleBudgetFilter(ctx context.Context, id uuid.UUID, status models.BudgetStatus) (*BudgetView, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	session, err := s.sessions.Update(ctx, id, func(sess *models.Session) error {
		sess.ToggleBudgetFilter(status)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not toggle budget filter: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"service":    "session",
		"method":     "ToggleBudgetFilter",
		"session_id": id,
		"filter":     session.BudgetFilter,
	}).Debug("Budget filter toggled")

	return s.view(ctx, session.BudgetFilter)
}

// GetBudgetView возвращает таблицу бюджета с фильтром сессии
func (s *sessionService) GetBudgetView(ctx context.Context, id uuid.UUID) (*BudgetView, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return s.view(ctx, session.BudgetFilter)
}

// GetBudget возвращает всю таблицу бюджета без фильтра
func (s *sessionService) GetBudget(ctx context.Context) (*BudgetView, error) {
	return s.view(ctx, nil)
}

func (s *sessionService) view(ctx context.Context, filter *models.BudgetStatus) (*BudgetView, error) {
	items, err := s.budget.ListBudgetItems(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load budget items")
		return nil, fmt.Errorf("service: could not load budget: %w", err)
	}
	return &BudgetView{
		Filter: filter,
		Items:  budget.Filter(items, filter),
		Stats:  budget.ComputeStats(items),
	}, nil
}
