package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service servicio del catálogo del salón (corte, coloración, manicure...).
// TotalCost, GrossProfit y ProfitMarginPct se calculan al guardar con los parámetros vigentes;
// son un caché: cualquier consumidor puede recalcularlos con finance.Price.
type Service struct {
	ID              string
	SalonID         string
	Name            string
	SalePrice       decimal.Decimal
	CommissionRate  decimal.Decimal // % del precio pagado al profesional
	Materials       []MaterialCost
	TotalCost       decimal.Decimal
	GrossProfit     decimal.Decimal
	ProfitMarginPct decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MaterialCost consumo de un material por servicio. Cost queda congelado al momento de la asignación.
type MaterialCost struct {
	MaterialID string
	Quantity   decimal.Decimal
	Cost       decimal.Decimal
}
