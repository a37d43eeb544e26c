package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// TierRepository tabla de patentes del salón.
type TierRepository interface {
	ListBySalon(ctx context.Context, salonID string) ([]entity.Tier, error)
	// Replace sustituye la tabla completa en una sola operación.
	Replace(ctx context.Context, salonID string, tiers []entity.Tier) error
}
