package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// Period clave (mes, año) de un resumen financiero.
type Period struct {
	Month int // 1-12
	Year  int
}

// Contains indica si t cae dentro de [inicio del mes, fin del mes] en UTC.
// Las fechas de caja son días de calendario guardados como medianoche UTC; la zona
// horaria con que llegue t no cambia el mes al que pertenece.
func (p Period) Contains(t time.Time) bool {
	u := t.UTC()
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return !u.Before(start) && !u.After(end)
}

// Matches indica si una despesa pertenece al período.
func (p Period) Matches(e entity.Expense) bool {
	return e.Month == p.Month && e.Year == p.Year
}

// PeriodFinancialSummary resumen derivado de un mes; nunca se persiste.
type PeriodFinancialSummary struct {
	Period           Period
	GrossRevenue     decimal.Decimal
	DirectCosts      decimal.Decimal
	IndirectCosts    decimal.Decimal
	Commissions      decimal.Decimal
	Taxes            decimal.Decimal
	ServiceCount     int
	AverageTicket    decimal.Decimal
	NetResult        decimal.Decimal
	ProfitMarginPct  decimal.Decimal
	DirectCostsPct   decimal.Decimal
	IndirectCostsPct decimal.Decimal
	CommissionsPct   decimal.Decimal
	TaxesPct         decimal.Decimal
}

// Summarize consolida las entradas de caja y las despesas de un período.
//
//	facturación bruta = Σ entradas del mes          ticket medio = bruta / cantidad
//	impuestos         = bruta * TaxRatePct / 100
//	resultado neto    = bruta - directas - indirectas - impuestos
//
// Las comisiones se informan aparte y no se descuentan del resultado. Todo porcentaje sobre
// la facturación vale cero si la facturación es cero.
func Summarize(
	transactions []entity.CashFlowEntry,
	directCosts, indirectCosts []entity.Expense,
	period Period,
	p BusinessParams,
) PeriodFinancialSummary {
	s := PeriodFinancialSummary{
		Period:        period,
		GrossRevenue:  decimal.Zero,
		DirectCosts:   decimal.Zero,
		IndirectCosts: decimal.Zero,
		Commissions:   decimal.Zero,
	}
	for _, tx := range transactions {
		if !tx.IsIncome() || !period.Contains(tx.Date) {
			continue
		}
		s.GrossRevenue = s.GrossRevenue.Add(tx.Amount)
		if tx.Commission != nil {
			s.Commissions = s.Commissions.Add(*tx.Commission)
		}
		s.ServiceCount++
	}
	s.DirectCosts = sumExpenses(directCosts, period)
	s.IndirectCosts = sumExpenses(indirectCosts, period)

	s.AverageTicket = decimal.Zero
	if s.ServiceCount > 0 {
		s.AverageTicket = s.GrossRevenue.Div(decimal.NewFromInt(int64(s.ServiceCount)))
	}
	s.Taxes = percentOf(s.GrossRevenue, p.TaxRatePct)
	s.NetResult = s.GrossRevenue.Sub(s.DirectCosts).Sub(s.IndirectCosts).Sub(s.Taxes)

	s.ProfitMarginPct = revenueShare(s.NetResult, s.GrossRevenue)
	s.DirectCostsPct = revenueShare(s.DirectCosts, s.GrossRevenue)
	s.IndirectCostsPct = revenueShare(s.IndirectCosts, s.GrossRevenue)
	s.CommissionsPct = revenueShare(s.Commissions, s.GrossRevenue)
	s.TaxesPct = revenueShare(s.Taxes, s.GrossRevenue)
	return s
}

// YearSummaries los doce resúmenes mensuales de un año, de enero a diciembre.
func YearSummaries(
	transactions []entity.CashFlowEntry,
	directCosts, indirectCosts []entity.Expense,
	year int,
	p BusinessParams,
) []PeriodFinancialSummary {
	out := make([]PeriodFinancialSummary, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, Summarize(transactions, directCosts, indirectCosts, Period{Month: m, Year: year}, p))
	}
	return out
}

func sumExpenses(expenses []entity.Expense, period Period) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if period.Matches(e) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// revenueShare porcentaje sobre la facturación; solo cuenta facturación positiva.
func revenueShare(part, revenue decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return part.Div(revenue).Mul(hundred)
}

// Combine acumula varios resúmenes mensuales en uno (ej. el total del año).
// Los porcentajes y el ticket medio se recalculan sobre los totales, no se promedian.
// El Period del resultado es {0, año del primer resumen}.
func Combine(summaries []PeriodFinancialSummary) PeriodFinancialSummary {
	s := PeriodFinancialSummary{
		GrossRevenue:  decimal.Zero,
		DirectCosts:   decimal.Zero,
		IndirectCosts: decimal.Zero,
		Commissions:   decimal.Zero,
		Taxes:         decimal.Zero,
		NetResult:     decimal.Zero,
	}
	if len(summaries) > 0 {
		s.Period = Period{Year: summaries[0].Period.Year}
	}
	for _, m := range summaries {
		s.GrossRevenue = s.GrossRevenue.Add(m.GrossRevenue)
		s.DirectCosts = s.DirectCosts.Add(m.DirectCosts)
		s.IndirectCosts = s.IndirectCosts.Add(m.IndirectCosts)
		s.Commissions = s.Commissions.Add(m.Commissions)
		s.Taxes = s.Taxes.Add(m.Taxes)
		s.NetResult = s.NetResult.Add(m.NetResult)
		s.ServiceCount += m.ServiceCount
	}
	s.AverageTicket = decimal.Zero
	if s.ServiceCount > 0 {
		s.AverageTicket = s.GrossRevenue.Div(decimal.NewFromInt(int64(s.ServiceCount)))
	}
	s.ProfitMarginPct = revenueShare(s.NetResult, s.GrossRevenue)
	s.DirectCostsPct = revenueShare(s.DirectCosts, s.GrossRevenue)
	s.IndirectCostsPct = revenueShare(s.IndirectCosts, s.GrossRevenue)
	s.CommissionsPct = revenueShare(s.Commissions, s.GrossRevenue)
	s.TaxesPct = revenueShare(s.Taxes, s.GrossRevenue)
	return s
}
