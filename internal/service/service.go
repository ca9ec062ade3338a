package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAddressRequired = errors.New("address is required")
	ErrEmptyQuery      = errors.New("query is empty")
	ErrInvalidTab      = errors.New("invalid tab")
	ErrInvalidStatus   = errors.New("invalid budget status")
	ErrNoFinding       = errors.New("no spatial finding yet")
	// ErrAnalysisFailed оборачивает любой сбой внешнего сервиса анализа
	ErrAnalysisFailed = errors.New("analysis provider failed")
)

// SessionRepository определяет контракт хранилища сессий дашборда.
// Изменения выполняются только через Update, атомарно относительно других изменений той же сессии.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error)
}

// BudgetRepository определяет источник таблицы бюджета (только чтение)
type BudgetRepository interface {
	ListBudgetItems(ctx context.Context) ([]models.BudgetLineItem, error)
}

// MediaProcessor готовит загруженный файл к анализу
type MediaProcessor interface {
	Process(ctx context.Context, r io.Reader, filename string) ([]media.Frame, error)
	ProcessImage(ctx context.Context, r io.Reader, filename string) (media.Frame, error)
}

// SessionService определяет контракт управления состоянием сессии
type SessionService interface {
	CreateSession(ctx context.Context) (*models.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*models.Session, error)
	SetTab(ctx context.Context, id uuid.UUID, tab models.Tab) (*models.Session, error)
	ToggleBudgetFilter(ctx context.Context, id uuid.UUID, status models.BudgetStatus) (*BudgetView, error)
	GetBudgetView(ctx context.Context, id uuid.UUID) (*BudgetView, error)
	GetBudget(ctx context.Context) (*BudgetView, error)
}

// IncidentService определяет контракт анализа инцидентов
type IncidentService interface {
	ReportIncident(ctx context.Context, sessionID uuid.UUID, address string, file io.Reader, filename string) (*models.IncidentReport, error)
	ListReports(ctx context.Context, sessionID uuid.UUID) ([]models.IncidentReport, error)
}

// SpatialService определяет контракт пространственного анализа
type SpatialService interface {
	AnalyzeSpatial(ctx context.Context, sessionID uuid.UUID, image io.Reader, filename string) (*models.SpatialFinding, error)
	GetFinding(ctx context.Context, sessionID uuid.UUID) (*models.SpatialFinding, error)
}

// AssistantService определяет контракт бюджетного ассистента
type AssistantService interface {
	AskBudget(ctx context.Context, sessionID uuid.UUID, query string) ([]models.ChatMessage, error)
	GetTranscript(ctx context.Context, sessionID uuid.UUID) ([]models.ChatMessage, error)
}

// BudgetView - таблица бюджета с учетом активного фильтра и сводкой по всей таблице
type BudgetView struct {
	Filter *models.BudgetStatus
	Items  []models.BudgetLineItem
	Stats  budget.Stats
}
