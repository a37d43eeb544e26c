package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// ExpenseUseCase despesas mensuales directas e indirectas.
type ExpenseUseCase struct {
	repo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

// Create registra una despesa para (mes, año).
func (uc *ExpenseUseCase) Create(ctx context.Context, salonID string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.Kind != entity.ExpenseDirect && in.Kind != entity.ExpenseIndirect {
		return nil, domain.ErrInvalidInput
	}
	if in.Month < 1 || in.Month > 12 || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.Expense{
		ID:          uuid.New().String(),
		SalonID:     salonID,
		Kind:        in.Kind,
		Description: in.Description,
		Amount:      in.Amount,
		Month:       in.Month,
		Year:        in.Year,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toExpenseResponse(e), nil
}

// List despesas filtradas por tipo y año; sin tipo devuelve directas e indirectas.
func (uc *ExpenseUseCase) List(ctx context.Context, salonID string, q dto.ExpenseQuery) ([]dto.ExpenseResponse, error) {
	kinds := []string{entity.ExpenseDirect, entity.ExpenseIndirect}
	if q.Kind != "" {
		kinds = []string{q.Kind}
	}
	out := make([]dto.ExpenseResponse, 0)
	for _, kind := range kinds {
		rows, err := uc.repo.ListByKind(ctx, salonID, kind, q.Year)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			out = append(out, *toExpenseResponse(&rows[i]))
		}
	}
	return out, nil
}

// Delete elimina una despesa.
func (uc *ExpenseUseCase) Delete(ctx context.Context, salonID, id string) error {
	return uc.repo.Delete(ctx, salonID, id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		Kind:        e.Kind,
		Description: e.Description,
		Amount:      money(e.Amount),
		Month:       e.Month,
		Year:        e.Year,
		CreatedAt:   e.CreatedAt,
	}
}
