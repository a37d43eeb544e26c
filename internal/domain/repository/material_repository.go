package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// MaterialRepository puerto de persistencia para insumos.
type MaterialRepository interface {
	Create(ctx context.Context, m *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	Update(ctx context.Context, m *entity.Material) error
	Delete(ctx context.Context, salonID, id string) error
	ListBySalon(ctx context.Context, salonID string) ([]entity.Material, error)
}
