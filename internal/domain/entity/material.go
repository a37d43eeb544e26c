package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material insumo comprado por lote (ej. tinta 12 unidades por R$ 240).
// El costo unitario se deriva siempre de BatchPrice / BatchQuantity.
type Material struct {
	ID            string
	SalonID       string
	Name          string
	BatchQuantity decimal.Decimal
	BatchPrice    decimal.Decimal
	Unit          string // ml, g, un
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UnitCost costo de una unidad del lote; cero si el lote no tiene cantidad.
func (m Material) UnitCost() decimal.Decimal {
	if !m.BatchQuantity.IsPositive() {
		return decimal.Zero
	}
	return m.BatchPrice.Div(m.BatchQuantity)
}
