// Package analysis описывает внешний сервис анализа (классификация снимков,
// геокодирование, ответы по бюджету, пространственный анализ) и его реализацию на Gemini.
package analysis

import (
	"context"
	"errors"

	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
)

var (
	ErrMissingCredential = errors.New("analysis provider credential is missing")
	ErrEmptyResponse     = errors.New("no response from analysis provider")
)

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

// Provider - контракт внешнего сервиса анализа. Конкретный бэкенд можно
// заменить, не затрагивая оркестрацию.
type Provider interface {
	// ClassifyImages классифицирует инцидент по одному или нескольким кадрам
	ClassifyImages(ctx context.Context, frames []media.Frame) (*models.Classification, error)
	// ResolveAddress находит координаты адреса; неразобранный ответ дает DefaultCenter
	ResolveAddress(ctx context.Context, address string) (*models.Location, error)
	// AnswerQuery отвечает на вопрос по таблице бюджета в формате Markdown
	AnswerQuery(ctx context.Context, items []models.BudgetLineItem, query string) (string, error)
	// DetectSpatialFeatures ищет "транспортные пустыни" на спутниковом снимке
	DetectSpatialFeatures(ctx context.Context, image media.Frame) (*models.SpatialDetection, error)
}
