package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// CashFlowRepository lançamentos de caja. No hay Update: los lançamentos son inmutables.
type CashFlowRepository interface {
	Create(ctx context.Context, e *entity.CashFlowEntry) error
	GetByID(ctx context.Context, id string) (*entity.CashFlowEntry, error)
	Delete(ctx context.Context, salonID, id string) error
	// ListBySalon devuelve todos los lançamentos del salón, sin orden garantizado.
	ListBySalon(ctx context.Context, salonID string) ([]entity.CashFlowEntry, error)
}
