package repository

import (
	"context"

	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

// ParamsSnapshotStore guarda el último BusinessParams calculado por salón, para que una fuente
// que no carga pueda reutilizar los valores del snapshot anterior.
// Get devuelve (nil, nil) si no hay snapshot previo.
type ParamsSnapshotStore interface {
	Get(ctx context.Context, salonID string) (*finance.BusinessParams, error)
	Set(ctx context.Context, salonID string, p finance.BusinessParams) error
}
