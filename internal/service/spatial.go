package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/analysis"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
)

type spatialService struct {
	sessions SessionRepository
	media    MediaProcessor
	provider analysis.Provider
	logger   *logrus.Logger
	now      func() time.Time
}

func NewSpatialService(sessions SessionRepository, processor MediaProcessor, provider analysis.Provider, logger *logrus.Logger) SpatialService {
	return &spatialService{
		sessions: sessions,
		media:    processor,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// AnalyzeSpatial ищет "транспортные пустыни" на спутниковом снимке и заменяет
// текущую находку сессии. Рамки не проверяются и передаются как есть.
func (s *spatialService) AnalyzeSpatial(ctx context.Context, sessionID uuid.UUID, image io.Reader, filename string) (*models.SpatialFinding, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "spatial",
		"method":     "AnalyzeSpatial",
		"session_id": sessionID,
	})

	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}

	frame, err := s.media.ProcessImage(ctx, image, filename)
	if err != nil {
		log.WithError(err).Warn("Rejected spatial analysis upload")
		return nil, fmt.Errorf("service: could not process image: %w", err)
	}

	detection, err := s.provider.DetectSpatialFeatures(ctx, frame)
	if err != nil {
		log.WithError(err).Error("Spatial analysis failed")
		return nil, fmt.Errorf("service: %w: %w", ErrAnalysisFailed, err)
	}

	finding := models.SpatialFinding{
		Image:         frame.Data,
		ImageMIMEType: frame.MIMEType,
		Summary:       detection.Summary,
		Boxes:         detection.Boxes,
		CreatedAt:     s.now(),
	}
	if _, err := s.sessions.Update(ctx, sessionID, func(sess *models.Session) error {
		sess.ReplaceFinding(finding)
		return nil
	}); err != nil {
		log.WithError(err).Error("Failed to store spatial finding")
		return nil, fmt.Errorf("service: could not store finding: %w", err)
	}

	log.WithField("boxes", len(finding.Boxes)).Info("Spatial analysis completed")
	return &finding, nil
}

// GetFinding возвращает текущую находку сессии
func (s *spatialService) GetFinding(ctx context.Context, sessionID uuid.UUID) (*models.SpatialFinding, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get session: %w", err)
	}
	if session.Finding == nil {
		return nil, ErrNoFinding
	}
	return session.Finding, nil
}
