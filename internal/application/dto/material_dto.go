package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialRequest entrada para crear/actualizar un insumo. El costo unitario no se acepta: se deriva.
type MaterialRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	BatchQuantity decimal.Decimal `json:"batch_quantity" validate:"gt=0"`
	BatchPrice    decimal.Decimal `json:"batch_price" validate:"gt=0"`
	Unit          string          `json:"unit" validate:"required,max=20"`
}

// MaterialResponse salida de un insumo.
type MaterialResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	BatchQuantity decimal.Decimal `json:"batch_quantity"`
	BatchPrice    decimal.Decimal `json:"batch_price"`
	Unit          string          `json:"unit"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
