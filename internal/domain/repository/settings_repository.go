package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// SettingsRepository configuración del negocio: márgenes, impuestos, depreciación y calendario.
// Get devuelve (nil, nil) si el salón aún no configuró nada.
type SettingsRepository interface {
	Get(ctx context.Context, salonID string) (*entity.BusinessSettings, error)
	// Save reemplaza la configuración completa, incluyendo días trabajados y feriados.
	Save(ctx context.Context, s *entity.BusinessSettings) error
}

// GoalRepository meta mensual del salón. Get devuelve (nil, nil) si no hay meta.
type GoalRepository interface {
	Get(ctx context.Context, salonID string) (*entity.Goal, error)
	Save(ctx context.Context, g *entity.Goal) error
}
