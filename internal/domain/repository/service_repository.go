package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// ServiceRepository puerto de persistencia para el catálogo de servicios.
// Las líneas de material se guardan y leen junto con el servicio.
type ServiceRepository interface {
	Create(ctx context.Context, s *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	Update(ctx context.Context, s *entity.Service) error
	Delete(ctx context.Context, salonID, id string) error
	ListBySalon(ctx context.Context, salonID string) ([]entity.Service, error)
}
