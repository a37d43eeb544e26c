package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodRequest entrada para crear o actualizar una forma de pago.
type PaymentMethodRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=100"`
	IsActive        bool            `json:"is_active"`
	DistributionPct decimal.Decimal `json:"distribution_percentage" validate:"min=0,max=100"`
	TaxRate         decimal.Decimal `json:"tax_rate" validate:"min=0,max=100"`
}

// PaymentMethodResponse salida de una forma de pago.
type PaymentMethodResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	IsActive        bool            `json:"is_active"`
	DistributionPct decimal.Decimal `json:"distribution_percentage"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PaymentMethodListResponse formas de pago con la tasa ponderada y avisos de distribución.
type PaymentMethodListResponse struct {
	Items        []PaymentMethodResponse `json:"items"`
	WeightedRate decimal.Decimal         `json:"weighted_average_rate"`
	Warnings     []WarningDTO            `json:"warnings"`
}
