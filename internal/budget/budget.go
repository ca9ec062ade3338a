// Package budget содержит статическую таблицу бюджета округа и расчеты над ней.
package budget

import (
	"strings"

	"github.com/shenikar/infra_vision/internal/models"
)

// SeedItems - исходные данные бюджета округа. Таблица не изменяется во время работы.
var SeedItems = []models.BudgetLineItem{
	{Department: "Sanitation", Project: "District 30 Waste Removal Upgrade", Cost: 1200000, Status: models.BudgetStatusInProgress, Year: 2024},
	{Department: "Transportation", Project: "Queens Blvd Pothole Repair", Cost: 450000, Status: models.BudgetStatusCompleted, Year: 2023},
	{Department: "Environmental", Project: "Flood Mitigation: Maspeth", Cost: 3200000, Status: models.BudgetStatusPlanned, Year: 2025},
	{Department: "Parks", Project: "Juniper Valley Park Renovation", Cost: 800000, Status: models.BudgetStatusOverBudget, Year: 2023},
	{Department: "Transportation", Project: "Bike Lane Expansion", Cost: 150000, Status: models.BudgetStatusInProgress, Year: 2024},
	{Department: "Education", Project: "School Roof Repairs (PS 12)", Cost: 2100000, Status: models.BudgetStatusPlanned, Year: 2024},
	{Department: "Public Safety", Project: "Intersection Cameras", Cost: 300000, Status: models.BudgetStatusCompleted, Year: 2023},
}

// Seed возвращает копию исходной таблицы
func Seed() []models.BudgetLineItem {
	items := make([]models.BudgetLineItem, len(SeedItems))
	copy(items, SeedItems)
	return items
}

// Stats - сводка для карточек бюджета
type Stats struct {
	TotalAllocated  float64 `json:"total_allocated"`
	ActiveCount     int     `json:"active_count"`
	OverBudgetCount int     `json:"over_budget_count"`
}

// ComputeStats считает сводку по всей таблице
func ComputeStats(items []models.BudgetLineItem) Stats {
	var stats Stats
	for _, item := range items {
		stats.TotalAllocated += item.Cost
		switch item.Status {
		case models.BudgetStatusInProgress:
			stats.ActiveCount++
		case models.BudgetStatusOverBudget:
			stats.OverBudgetCount++
		}
	}
	return stats
}

// Filter возвращает строки с указанным статусом. nil означает отсутствие фильтра.
func Filter(items []models.BudgetLineItem, status *models.BudgetStatus) []models.BudgetLineItem {
	if status == nil {
		return items
	}
	filtered := make([]models.BudgetLineItem, 0, len(items))
	for _, item := range items {
		if item.Status == *status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// DepartmentTotal суммирует стоимость строк, чей департамент совпадает с
// классифицированным без учета регистра по вхождению подстроки в любую сторону.
// Эвристика намеренно нестрогая и может давать лишние совпадения.
func DepartmentTotal(items []models.BudgetLineItem, department string) float64 {
	dept := strings.ToLower(department)
	if dept == "" {
		return 0
	}
	var total float64
	for _, item := range items {
		name := strings.ToLower(item.Department)
		if strings.Contains(name, dept) || strings.Contains(dept, name) {
			total += item.Cost
		}
	}
	return total
}
