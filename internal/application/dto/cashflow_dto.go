package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlowEntryRequest entrada para registrar un lançamento.
// Entradas requieren payment_method; salidas requieren category.
type CashFlowEntryRequest struct {
	Date          string           `json:"date" validate:"required,datetime=2006-01-02"`
	Description   string           `json:"description" validate:"required,max=300"`
	Type          string           `json:"type" validate:"required,oneof=entrada saida"`
	Amount        decimal.Decimal  `json:"amount" validate:"gt=0"`
	PaymentMethod string           `json:"payment_method" validate:"required_if=Type entrada,max=100"`
	Category      string           `json:"category" validate:"required_if=Type saida,max=100"`
	Commission    *decimal.Decimal `json:"commission,omitempty"`
}

// CashFlowQuery ventana opcional del extracto (YYYY-MM-DD).
type CashFlowQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// CashFlowLineDTO lançamento con saldo acumulado.
type CashFlowLineDTO struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	Description    string           `json:"description"`
	Type           string           `json:"type"`
	Amount         decimal.Decimal  `json:"amount"`
	PaymentMethod  string           `json:"payment_method,omitempty"`
	Category       string           `json:"category,omitempty"`
	Commission     *decimal.Decimal `json:"commission,omitempty"`
	RunningBalance decimal.Decimal  `json:"running_balance"`
}

// CashFlowStatementDTO extracto ordenado por fecha con totales del intervalo.
type CashFlowStatementDTO struct {
	Items          []CashFlowLineDTO `json:"items"`
	OpeningBalance decimal.Decimal   `json:"opening_balance"`
	TotalIn        decimal.Decimal   `json:"total_in"`
	TotalOut       decimal.Decimal   `json:"total_out"`
	ClosingBalance decimal.Decimal   `json:"closing_balance"`
}
