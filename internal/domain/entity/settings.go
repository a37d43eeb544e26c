package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BusinessSettings márgenes, impuestos, depreciación y calendario configurados por el salón.
// El porcentaje de despesas directas NO se guarda: siempre se deriva como
// 100 - DesiredProfitPct - IndirectExpensePct.
type BusinessSettings struct {
	SalonID            string
	DesiredProfitPct   decimal.Decimal // lucro desejado (%)
	IndirectExpensePct decimal.Decimal // despesas indiretas + depreciação (%)
	TaxRatePct         decimal.Decimal // alíquota fija de impuestos sobre la venta (%)
	MobilizedValue     decimal.Decimal // valor mobilizado (equipos, muebles)
	TotalToDepreciate  decimal.Decimal // total a depreciar en 60 meses
	TeamSize           int
	WorkingDays        *WorkingDaysConfig // nil = calendario aún no cargado
	UpdatedAt          time.Time
}

// Tipos de meta del salón.
const (
	GoalTypeRevenue  = "faturamento" // meta de facturación mensual
	GoalTypeServices = "atendimentos" // meta de cantidad de servicios
)

// Goal meta mensual del salón.
type Goal struct {
	SalonID   string
	Type      string
	Target    decimal.Decimal
	UpdatedAt time.Time
}
