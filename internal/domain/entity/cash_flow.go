package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	EntryTypeIn  = "entrada"
	EntryTypeOut = "saida"
)

// CashFlowEntry lançamento del flujo de caja. Inmutable una vez creado; borrar lo elimina.
// Las entradas llevan PaymentMethod; las salidas llevan Category.
type CashFlowEntry struct {
	ID            string
	SalonID       string
	Date          time.Time
	Description   string
	Type          string // entrada | saida
	Amount        decimal.Decimal
	PaymentMethod string
	Category      string
	Commission    *decimal.Decimal // comisión pagada por el servicio, si aplica
	CreatedAt     time.Time
}

// IsIncome indica si el lançamento suma al saldo.
func (e CashFlowEntry) IsIncome() bool {
	return e.Type == EntryTypeIn
}
