package finance

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// LedgerLine lançamento anotado con el saldo acumulado después de aplicarlo.
type LedgerLine struct {
	Entry          entity.CashFlowEntry
	RunningBalance decimal.Decimal
}

// LedgerTotals totales de un extracto.
type LedgerTotals struct {
	TotalIn  decimal.Decimal
	TotalOut decimal.Decimal
	Balance  decimal.Decimal
}

// WithRunningBalance ordena los lançamentos por fecha ascendente (orden estable: los empates
// conservan el orden de entrada) y acumula el saldo de izquierda a derecha partiendo de cero.
// Una entrada suma su valor; cualquier otro tipo lo resta.
//
// No hay saldo incremental: insertar o borrar un lançamento anterior invalida todos los
// saldos posteriores, así que siempre se recalcula sobre la lista completa.
func WithRunningBalance(entries []entity.CashFlowEntry) []LedgerLine {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b entity.CashFlowEntry) int {
		return a.Date.Compare(b.Date)
	})

	lines := make([]LedgerLine, 0, len(sorted))
	balance := decimal.Zero
	for _, e := range sorted {
		balance = balance.Add(signedAmount(e))
		lines = append(lines, LedgerLine{Entry: e, RunningBalance: balance})
	}
	return lines
}

// Totals entradas, salidas y saldo final de un extracto.
func Totals(lines []LedgerLine) LedgerTotals {
	t := LedgerTotals{TotalIn: decimal.Zero, TotalOut: decimal.Zero, Balance: decimal.Zero}
	for _, l := range lines {
		if l.Entry.IsIncome() {
			t.TotalIn = t.TotalIn.Add(l.Entry.Amount)
		} else {
			t.TotalOut = t.TotalOut.Add(l.Entry.Amount)
		}
	}
	if n := len(lines); n > 0 {
		t.Balance = lines[n-1].RunningBalance
	}
	return t
}

func signedAmount(e entity.CashFlowEntry) decimal.Decimal {
	if e.IsIncome() {
		return e.Amount
	}
	return e.Amount.Neg()
}
