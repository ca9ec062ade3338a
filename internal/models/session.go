package models

import (
	"time"

	"github.com/google/uuid"
)

// Tab - активная вкладка дашборда
type Tab string

const (
	TabMap     Tab = "map"
	TabBudget  Tab = "budget"
	TabSpatial Tab = "spatial"
)

// Session - состояние одной сессии дашборда.
// Отчеты и сообщения только добавляются, находка пространственного анализа
// всегда одна и заменяется целиком.
type Session struct {
	ID           uuid.UUID        `json:"id"`
	ActiveTab    Tab              `json:"active_tab"`
	BudgetFilter *BudgetStatus    `json:"budget_filter,omitempty"`
	Reports      []IncidentReport `json:"reports"`
	Transcript   []ChatMessage    `json:"transcript"`
	Finding      *SpatialFinding  `json:"finding,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// AppendReport добавляет отчет в конец списка
func (s *Session) AppendReport(report IncidentReport) {
	s.Reports = append(s.Reports, report)
}

// AppendMessage добавляет сообщение в конец переписки
func (s *Session) AppendMessage(msg ChatMessage) {
	s.Transcript = append(s.Transcript, msg)
}

// ReplaceFinding заменяет текущую находку
func (s *Session) ReplaceFinding(finding SpatialFinding) {
	s.Finding = &finding
}

// ToggleBudgetFilter включает фильтр по статусу. Повторный выбор того же
// статуса или пустой статус снимает фильтр.
func (s *Session) ToggleBudgetFilter(status BudgetStatus) {
	if status == "" || (s.BudgetFilter != nil && *s.BudgetFilter == status) {
		s.BudgetFilter = nil
		return
	}
	s.BudgetFilter = &status
}
