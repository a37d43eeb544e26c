package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRequest entrada para registrar una despesa mensual.
type ExpenseRequest struct {
	Kind        string          `json:"kind" validate:"required,oneof=direta indireta"`
	Description string          `json:"description" validate:"required,max=300"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Month       int             `json:"month" validate:"required,min=1,max=12"`
	Year        int             `json:"year" validate:"required,min=2000,max=2100"`
}

// ExpenseQuery filtros del listado.
type ExpenseQuery struct {
	Kind string `query:"kind" validate:"omitempty,oneof=direta indireta"`
	Year int    `query:"year"`
}

// ExpenseResponse salida de una despesa.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	CreatedAt   time.Time       `json:"created_at"`
}
