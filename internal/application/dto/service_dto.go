package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialUsageRequest consumo de un insumo por servicio.
type MaterialUsageRequest struct {
	MaterialID string          `json:"material_id" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"gt=0"`
}

// ServiceRequest entrada para crear/actualizar un servicio. Los costos se calculan en el servidor.
type ServiceRequest struct {
	Name           string                 `json:"name" validate:"required,min=1,max=200"`
	SalePrice      decimal.Decimal        `json:"sale_price" validate:"gt=0"`
	CommissionRate decimal.Decimal        `json:"commission_rate" validate:"min=0,max=100"`
	Materials      []MaterialUsageRequest `json:"materials" validate:"dive"`
}

// MaterialCostDTO línea de material con costo congelado.
type MaterialCostDTO struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Cost       decimal.Decimal `json:"cost"`
}

// ServiceResponse salida de un servicio.
type ServiceResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	SalePrice       decimal.Decimal   `json:"sale_price"`
	CommissionRate  decimal.Decimal   `json:"commission_rate"`
	Materials       []MaterialCostDTO `json:"materials"`
	TotalCost       decimal.Decimal   `json:"total_cost"`
	GrossProfit     decimal.Decimal   `json:"gross_profit"`
	ProfitMarginPct decimal.Decimal   `json:"profit_margin"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// ServiceBreakdownDTO cascada de costos de un servicio.
type ServiceBreakdownDTO struct {
	ServiceID            string          `json:"service_id"`
	ServiceName          string          `json:"service_name"`
	SalePrice            decimal.Decimal `json:"sale_price"`
	CommissionCost       decimal.Decimal `json:"commission_cost"`
	MaterialCost         decimal.Decimal `json:"material_cost"`
	CardCost             decimal.Decimal `json:"card_cost"`
	TaxCost              decimal.Decimal `json:"tax_cost"`
	TotalDirectCost      decimal.Decimal `json:"total_direct_cost"`
	DirectCostPct        decimal.Decimal `json:"direct_cost_pct"`
	OperationalMargin    decimal.Decimal `json:"operational_margin"`
	OperationalMarginPct decimal.Decimal `json:"operational_margin_pct"`
	OperationalCost      decimal.Decimal `json:"operational_cost"`
	PartialProfit        decimal.Decimal `json:"partial_profit"`
	PartialProfitPct     decimal.Decimal `json:"partial_profit_pct"`
	Stale                bool            `json:"stale"` // total_cost guardado no coincide con los parámetros actuales
}

// RepriceResponse resultado de POST /api/services/reprice.
type RepriceResponse struct {
	Updated int `json:"updated"`
}
