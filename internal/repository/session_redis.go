package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
)

// maxUpdateRetries - число попыток оптимистичной транзакции при конкурентной записи
const maxUpdateRetries = 10

// RedisSessionRepository хранит сессии в Redis в виде JSON с ограниченным сроком жизни
type RedisSessionRepository struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

func NewRedisSessionRepository(redisClient *redis.Client, ttl time.Duration) service.SessionRepository {
	return &RedisSessionRepository{
		redisClient: redisClient,
		ttl:         ttl,
		now:         time.Now,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id.String())
}

// Create сохраняет новую сессию, если ключ еще не занят
func (r *RedisSessionRepository) Create(ctx context.Context, session *models.Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	created, err := r.redisClient.SetNX(ctx, sessionKey(session.ID), val, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !created {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	return nil
}

// Get возвращает сессию по ее UUID
func (r *RedisSessionRepository) Get(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	val, err := r.redisClient.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return decodeSession(val)
}

// Update читает сессию под WATCH, применяет fn и записывает результат в MULTI.
// При конкурентном изменении ключа транзакция повторяется.
func (r *RedisSessionRepository) Update(ctx context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {
	key := sessionKey(id)
	var updated *models.Session

	txf := func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
			}
			return fmt.Errorf("failed to get session: %w", err)
		}

		session, err := decodeSession(val)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UpdatedAt = r.now()

		payload, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			// Срок жизни продлевается при каждой записи
			pipe.Set(ctx, key, payload, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		updated = session
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.redisClient.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("failed to update session %s: too many concurrent writes", id)
}

func decodeSession(val []byte) (*models.Session, error) {
	session := &models.Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return session, nil
}
