package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo despesas mensuales.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persiste una despesa.
func (r *ExpenseRepo) Create(ctx context.Context, e *entity.Expense) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO expenses (id, salon_id, kind, description, amount, month, year, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.SalonID, e.Kind, e.Description, e.Amount, e.Month, e.Year, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// Delete elimina una despesa del salón.
func (r *ExpenseRepo) Delete(ctx context.Context, salonID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM expenses WHERE id = $1 AND salon_id = $2`, id, salonID)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListByKind despesas del tipo dado; year = 0 devuelve todos los años.
func (r *ExpenseRepo) ListByKind(ctx context.Context, salonID, kind string, year int) ([]entity.Expense, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, salon_id, kind, description, amount, month, year, created_at
		FROM expenses
		WHERE salon_id = $1 AND kind = $2 AND ($3 = 0 OR year = $3)
		ORDER BY year, month, created_at`, salonID, kind, year)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	list := []entity.Expense{}
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.SalonID, &e.Kind, &e.Description, &e.Amount, &e.Month, &e.Year, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
