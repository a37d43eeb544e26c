package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// SalonRepository define el puerto de persistencia para Salon (DIP).
// La implementación vive en infrastructure.
type SalonRepository interface {
	Create(ctx context.Context, salon *entity.Salon) error
	GetByID(ctx context.Context, id string) (*entity.Salon, error)
}
