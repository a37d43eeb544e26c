// Package finance es el motor de parámetros financieros derivados y precificación del salón.
//
// Todas las funciones son puras: reciben snapshots inmutables ya cargados por la aplicación
// y devuelven valores nuevos. No hacen I/O, no registran logs y no guardan estado, por lo que
// pueden invocarse concurrentemente con snapshots distintos. Nunca devuelven error: las
// entradas degeneradas (precio cero, distribución cero, listas vacías) se resuelven con guardas
// que devuelven cero, y las inconsistencias de configuración se informan como Warning.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// WeightedRate tasa media de las adquirentes ponderada por la distribución de ventas.
//
//	rate = Σ(taxRate_i * distribution_i) / Σ distribution_i   (solo métodos activos)
//
// Un método activo con distribución cero no aporta nada. Si la distribución total es cero
// devuelve cero.
func WeightedRate(methods []entity.PaymentMethod) decimal.Decimal {
	totalDistribution := decimal.Zero
	weighted := decimal.Zero
	for _, m := range methods {
		if !m.IsActive {
			continue
		}
		totalDistribution = totalDistribution.Add(m.DistributionPct)
		weighted = weighted.Add(m.TaxRate.Mul(m.DistributionPct))
	}
	if totalDistribution.IsZero() {
		return decimal.Zero
	}
	return weighted.Div(totalDistribution)
}
