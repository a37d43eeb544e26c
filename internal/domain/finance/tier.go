package finance

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// TierProgress posición del salón en la tabla de patentes.
type TierProgress struct {
	Current         *entity.Tier
	Next            *entity.Tier // nil si ya superó la última patente
	ProgressPct     decimal.Decimal
	RemainingToNext decimal.Decimal
}

// ResolveTier resuelve la patente actual y la siguiente para una facturación acumulada.
//
// Current es la patente de mayor umbral <= revenue (un umbral igual al revenue cuenta como
// alcanzado); si ninguna califica se usa la más baja. Next es la de menor umbral > revenue.
// ProgressPct queda en [0, 100] y vale 100 cuando no hay siguiente.
// Sin patentes devuelve un TierProgress vacío (Current nil).
func ResolveTier(revenue decimal.Decimal, tiers []entity.Tier) TierProgress {
	if len(tiers) == 0 {
		return TierProgress{ProgressPct: decimal.Zero, RemainingToNext: decimal.Zero}
	}
	sorted := SortTiers(tiers)

	var current, next *entity.Tier
	for i := range sorted {
		if sorted[i].MinThreshold.LessThanOrEqual(revenue) {
			current = &sorted[i]
		} else if next == nil {
			next = &sorted[i]
		}
	}
	if current == nil {
		current = &sorted[0]
	}

	out := TierProgress{Current: current, Next: next}
	if next == nil {
		out.ProgressPct = hundred
		out.RemainingToNext = decimal.Zero
		return out
	}

	span := next.MinThreshold.Sub(current.MinThreshold)
	progress := decimal.Zero
	if span.IsPositive() {
		progress = revenue.Sub(current.MinThreshold).Div(span).Mul(hundred)
	}
	out.ProgressPct = clampPct(progress)
	out.RemainingToNext = next.MinThreshold.Sub(revenue)
	return out
}

// CumulativeRevenue facturación acumulada: suma de todas las entradas de caja.
func CumulativeRevenue(entries []entity.CashFlowEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.IsIncome() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// SortTiers copia de la tabla ordenada por umbral ascendente (estable).
func SortTiers(tiers []entity.Tier) []entity.Tier {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b entity.Tier) int {
		return a.MinThreshold.Cmp(b.MinThreshold)
	})
	return sorted
}

func clampPct(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	if v.GreaterThan(hundred) {
		return hundred
	}
	return v
}
