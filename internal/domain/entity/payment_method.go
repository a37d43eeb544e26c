package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod forma de pago aceptada por el salón (dinero, pix, débito, crédito...).
// DistributionPct es la fracción (0-100) de las ventas cobradas con este método;
// TaxRate es la tarifa de la adquirente (0-100) cobrada sobre el valor de la venta.
type PaymentMethod struct {
	ID              string
	SalonID         string
	Name            string
	IsActive        bool
	DistributionPct decimal.Decimal
	TaxRate         decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
