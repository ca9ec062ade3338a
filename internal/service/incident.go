package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/analysis"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type incidentService struct {
	sessions  SessionRepository
	budget    BudgetRepository
	media     MediaProcessor
	provider  analysis.Provider
	publisher webhook.Publisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewIncidentService(
	sessions SessionRepository,
	budget BudgetRepository,
	processor MediaProcessor,
	provider analysis.Provider,
	publisher webhook.Publisher,
	logger *logrus.Logger,
) IncidentService {
	return &incidentService{
		sessions:  sessions,
		budget:    budget,
		media:     processor,
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ReportIncident анализирует снимок или видео и создает отчет об инциденте.
// Классификация и геокодирование выполняются параллельно; если хотя бы один
// вызов завершился ошибкой, отчет не создается.
func (s *incidentService) ReportIncident(ctx context.Context, sessionID uuid.UUID, address string, file io.Reader, filename string) (*models.IncidentReport, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "incident",
		"method":     "ReportIncident",
		"session_id": sessionID,
		"filename":   filename,
	})
	log.Info("Attempting to report a new incident")

	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}

	frames, err := s.media.Process(ctx, file, filename)
	if err != nil {
		log.WithError(err).Warn("Failed to preprocess media")
		return nil, fmt.Errorf("service: could not process media: %w", err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("service: could not process media: %w", media.ErrUnsupportedMedia)
	}

	var (
		classification *models.Classification
		location       *models.Location
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := s.provider.ClassifyImages(gctx, frames)
		if err != nil {
			return fmt.Errorf("classification: %w", err)
		}
		classification = result
		return nil
	})
	g.Go(func() error {
		result, err := s.provider.ResolveAddress(gctx, address)
		if err != nil {
			return fmt.Errorf("geocoding: %w", err)
		}
		location = result
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Incident analysis failed")
		return nil, fmt.Errorf("service: %w: %w", ErrAnalysisFailed, err)
	}

	items, err := s.budget.ListBudgetItems(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load budget items")
		return nil, fmt.Errorf("service: could not load budget: %w", err)
	}

	report := models.IncidentReport{
		ID:                    uuid.New(),
		CreatedAt:             s.now(),
		Latitude:              location.Latitude,
		Longitude:             location.Longitude,
		Severity:              classification.Severity,
		Type:                  classification.Type,
		WaterDepthEstimate:    classification.WaterDepth,
		Description:           classification.Description,
		Thumbnail:             frames[0].Data,
		ThumbnailMIMEType:     frames[0].MIMEType,
		Address:               address,
		GoogleMapsURL:         location.GoogleMapsURL,
		RepairCostEstimate:    classification.RepairCost,
		Department:            classification.Department,
		DepartmentBudgetTotal: budget.DepartmentTotal(items, classification.Department),
	}

	if _, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) error {
		sess.AppendReport(report)
		return nil
	}); err != nil {
		log.WithError(err).Error("Failed to append report to session")
		return nil, fmt.Errorf("service: could not store report: %w", err)
	}

	if err := s.publisher.Publish(ctx, webhook.NewReportEvent(sessionID, report, report.CreatedAt)); err != nil {
		log.WithError(err).Warn("Failed to publish report event")
	}

	log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"type":      report.Type,
		"severity":  report.Severity,
	}).Info("Incident reported successfully")
	return &report, nil
}

// ListReports возвращает отчеты сессии в порядке добавления
func (s *incidentService) ListReports(ctx context.Context, sessionID uuid.UUID) ([]models.IncidentReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	return session.Reports, nil
}
