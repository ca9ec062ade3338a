package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/media"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/sirupsen/logrus"
)

// fakeSessions - простое хранилище сессий для тестов сервисов
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]models.Session
	updates  int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[uuid.UUID]models.Session)}
}

func (f *fakeSessions) Create(_ context.Context, session *models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID] = *session
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id uuid.UUID) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (f *fakeSessions) Update(_ context.Context, id uuid.UUID, fn func(*models.Session) error) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if err := fn(&session); err != nil {
		return nil, err
	}
	f.sessions[id] = session
	f.updates++
	return &session, nil
}

// seed добавляет пустую сессию и возвращает ее ID
func (f *fakeSessions) seed() uuid.UUID {
	id := uuid.New()
	f.sessions[id] = models.Session{ID: id, ActiveTab: models.TabMap, Reports: []models.IncidentReport{}}
	return id
}

type staticBudget struct {
	err error
}

func (b staticBudget) ListBudgetItems(context.Context) ([]models.BudgetLineItem, error) {
	if b.err != nil {
		return nil, b.err
	}
	return budget.Seed(), nil
}

// fakeProcessor возвращает заранее заданные кадры и запоминает число вызовов
type fakeProcessor struct {
	frames []media.Frame
	err    error
	calls  int
}

func (p *fakeProcessor) Process(_ context.Context, r io.Reader, _ string) ([]media.Frame, error) {
	p.calls++
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return p.frames, p.err
}

func (p *fakeProcessor) ProcessImage(_ context.Context, r io.Reader, _ string) (media.Frame, error) {
	p.calls++
	if p.err != nil {
		return media.Frame{}, p.err
	}
	if len(p.frames) == 0 {
		return media.Frame{}, errors.New("no frames configured")
	}
	return p.frames[0], nil
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}
