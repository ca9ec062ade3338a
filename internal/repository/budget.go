package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/infra_vision/internal/budget"
	"github.com/shenikar/infra_vision/internal/models"
	"github.com/shenikar/infra_vision/internal/service"
)

// StaticBudgetRepository отдает встроенную таблицу бюджета
type StaticBudgetRepository struct{}

func NewStaticBudgetRepository() service.BudgetRepository {
	return StaticBudgetRepository{}
}

// ListBudgetItems возвращает копию встроенной таблицы
func (StaticBudgetRepository) ListBudgetItems(context.Context) ([]models.BudgetLineItem, error) {
	return budget.Seed(), nil
}

// Querier - часть пула pgx, нужная для чтения бюджета
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresBudgetRepository читает таблицу budget_items, заполненную миграцией
type PostgresBudgetRepository struct {
	db Querier
}

func NewPostgresBudgetRepository(db Querier) service.BudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

// ListBudgetItems возвращает строки бюджета в порядке добавления
func (r *PostgresBudgetRepository) ListBudgetItems(ctx context.Context) ([]models.BudgetLineItem, error) {
	query := `
		SELECT department, project, cost, status, year
		FROM budget_items
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", err)
	}
	defer rows.Close()

	items := make([]models.BudgetLineItem, 0)
	for rows.Next() {
		var (
			item   models.BudgetLineItem
			status string
		)
		if err := rows.Scan(&item.Department, &item.Project, &item.Cost, &status, &item.Year); err != nil {
			return nil, fmt.Errorf("failed to scan budget item row: %w", err)
		}
		item.Status = models.BudgetStatus(status)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return items, nil
}
