package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/infra_vision/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"

	EventReportCreated = "report.created"
)

// ReportEvent - структура для данных вебхука о новом отчете
type ReportEvent struct {
	Type      string                `json:"type"`
	SessionID uuid.UUID             `json:"session_id"`
	Timestamp time.Time             `json:"timestamp"`
	Report    models.IncidentReport `json:"report"`
}

// NewReportEvent собирает событие без миниатюры, чтобы не раздувать очередь
func NewReportEvent(sessionID uuid.UUID, report models.IncidentReport, at time.Time) ReportEvent {
	report.Thumbnail = nil
	report.ThumbnailMIMEType = ""
	return ReportEvent{
		Type:      EventReportCreated,
		SessionID: sessionID,
		Timestamp: at,
		Report:    report,
	}
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event ReportEvent) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event ReportEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, когда очередь не настроена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ReportEvent) error { return nil }
