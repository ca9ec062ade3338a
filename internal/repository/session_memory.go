package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
	"github.com/sirupsen/logrus"
)

type memoryEntry struct {
	session   models.Session
	expiresAt time.Time
}

// MemorySessionRepository хранит сессии в памяти процесса.
// Просроченные сессии удаляются лениво при обращении.
type MemorySessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[uuid.UUID]*memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ service.SessionRepository = (*MemorySessionRepository)(nil)

// Create сохраняет новую сессию
func (r *MemorySessionRepository) Create(_ context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lookup(session.ID); ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	r.sessions[session.ID] = &memoryEntry{
		session:   cloneSession(*session),
		expiresAt: r.expiry(),
	}
	return nil
}

// Get возвращает копию сессии
func (r *MemorySessionRepository) Get(_ context.Context, id uuid.UUID) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
	}
	session := cloneSession(entry.session)
	return &session, nil
}

// Update применяет fn к копии сессии и сохраняет результат, если fn не вернула ошибку
func (r *MemorySessionRepository) Update(_ context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, service.ErrSessionNotFound)
	}

	session := cloneSession(entry.session)
	if err := fn(&session); err != nil {
		return nil, err
	}
	session.UpdatedAt = r.now()

	entry.session = session
	entry.expiresAt = r.expiry()

	result := cloneSession(session)
	return &result, nil
}

// PruneExpired удаляет все просроченные сессии и возвращает их число
func (r *MemorySessionRepository) PruneExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, entry := range r.sessions {
		if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// StartJanitor периодически удаляет просроченные сессии до отмены ctx.
// Брошенные сессии иначе остаются в памяти вместе с миниатюрами и снимками.
func (r *MemorySessionRepository) StartJanitor(ctx context.Context, interval time.Duration, logger *logrus.Logger) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := r.PruneExpired(); n > 0 {
					logger.WithField("removed", n).Debug("Expired sessions pruned")
				}
			}
		}
	}()
}

func (r *MemorySessionRepository) lookup(id uuid.UUID) (*memoryEntry, bool) {
	entry, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && !r.now().Before(entry.expiresAt) {
		delete(r.sessions, id)
		return nil, false
	}
	return entry, true
}

func (r *MemorySessionRepository) expiry() time.Time {
	if r.ttl <= 0 {
		return time.Time{}
	}
	return r.now().Add(r.ttl)
}

// cloneSession копирует срезы и указатели, чтобы вызывающий не менял хранимое состояние
func cloneSession(s models.Session) models.Session {
	out := s
	if s.BudgetFilter != nil {
		filter := *s.BudgetFilter
		out.BudgetFilter = &filter
	}
	if s.Reports != nil {
		out.Reports = append(make([]models.IncidentReport, 0, len(s.Reports)), s.Reports...)
	}
	if s.Transcript != nil {
		out.Transcript = append(make([]models.ChatMessage, 0, len(s.Transcript)), s.Transcript...)
	}
	if s.Finding != nil {
		finding := *s.Finding
		finding.Boxes = append([]models.BoundingBox(nil), s.Finding.Boxes...)
		out.Finding = &finding
	}
	return out
}
