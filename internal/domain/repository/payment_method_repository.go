package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// PaymentMethodRepository puerto de persistencia para las formas de pago del salón.
type PaymentMethodRepository interface {
	Create(ctx context.Context, m *entity.PaymentMethod) error
	GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error)
	Update(ctx context.Context, m *entity.PaymentMethod) error
	Delete(ctx context.Context, salonID, id string) error
	ListBySalon(ctx context.Context, salonID string) ([]entity.PaymentMethod, error)
}
