package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// ExpenseRepository despesas mensuales directas e indirectas.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, salonID, id string) error
	// ListByKind devuelve las despesas del tipo indicado; year = 0 no filtra por año.
	ListByKind(ctx context.Context, salonID, kind string, year int) ([]entity.Expense, error)
}
