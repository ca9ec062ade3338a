package models

// BudgetStatus - статус строки бюджета
type BudgetStatus string

const (
	BudgetStatusPlanned    BudgetStatus = "Planned"
	BudgetStatusInProgress BudgetStatus = "In Progress"
	BudgetStatusCompleted  BudgetStatus = "Completed"
	BudgetStatusOverBudget BudgetStatus = "Over Budget"
)

// Valid сообщает, входит ли статус в фиксированный набор
func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusPlanned, BudgetStatusInProgress, BudgetStatusCompleted, BudgetStatusOverBudget:
		return true
	}
	return false
}

// BudgetLineItem - строка статического бюджета округа. Только для чтения.
type BudgetLineItem struct {
	Department string       `json:"department"`
	Project    string       `json:"project"`
	Cost       float64      `json:"cost"`
	Status     BudgetStatus `json:"status"`
	Year       int          `json:"year"`
}
