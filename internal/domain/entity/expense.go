package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de despesa.
const (
	ExpenseDirect   = "direta"
	ExpenseIndirect = "indireta"
)

// Expense despesa mensual (directa o indirecta) indexada por (mes, año).
type Expense struct {
	ID          string
	SalonID     string
	Kind        string // direta | indireta
	Description string
	Amount      decimal.Decimal
	Month       int // 1-12
	Year        int
	CreatedAt   time.Time
}
