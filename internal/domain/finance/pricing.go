package finance

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// ServiceBreakdown cascada de costos de un servicio, del precio de venta al lucro parcial.
// Los valores no se redondean aquí; la capa de aplicación redondea a 2 decimales.
type ServiceBreakdown struct {
	SalePrice            decimal.Decimal
	CommissionCost       decimal.Decimal
	MaterialCost         decimal.Decimal
	CardCost             decimal.Decimal
	TaxCost              decimal.Decimal
	TotalDirectCost      decimal.Decimal
	DirectCostPct        decimal.Decimal
	OperationalMargin    decimal.Decimal
	OperationalMarginPct decimal.Decimal
	OperationalCost      decimal.Decimal
	PartialProfit        decimal.Decimal
	PartialProfitPct     decimal.Decimal
	// Stale indica que el TotalCost guardado ya no coincide con DirectCost bajo los parámetros actuales.
	Stale bool
}

// Breakdown calcula la cascada en orden fijo:
//
//  1. comisión     = precio * commissionRate / 100
//  2. materiales   = Σ costo por línea (congelado al asignar el material)
//  3. tarjeta      = precio * WeightedPaymentRatePct / 100
//  4. impuestos    = precio * TaxRatePct / 100
//  5. costo directo total = svc.TotalCost (valor guardado al salvar el servicio)
//  6. margen operacional  = precio - costo directo total
//  7. costo operacional   = precio * IndirectExpensePct / 100
//  8. lucro parcial       = margen operacional - costo operacional
//
// Todo porcentaje sobre el precio devuelve cero si el precio es cero.
func Breakdown(svc entity.Service, p BusinessParams) ServiceBreakdown {
	price := svc.SalePrice
	b := ServiceBreakdown{
		SalePrice:      price,
		CommissionCost: percentOf(price, svc.CommissionRate),
		MaterialCost:   MaterialTotal(svc.Materials),
		CardCost:       percentOf(price, p.WeightedPaymentRatePct),
		TaxCost:        percentOf(price, p.TaxRatePct),
	}
	b.TotalDirectCost = svc.TotalCost
	b.DirectCostPct = shareOf(b.TotalDirectCost, price)

	b.OperationalMargin = price.Sub(b.TotalDirectCost)
	b.OperationalMarginPct = shareOf(b.OperationalMargin, price)

	b.OperationalCost = percentOf(price, p.IndirectExpensePct)
	b.PartialProfit = b.OperationalMargin.Sub(b.OperationalCost)
	b.PartialProfitPct = shareOf(b.PartialProfit, price)

	b.Stale = !DirectCost(svc, p).Equal(svc.TotalCost)
	return b
}

// StorageScale decimales con que se guardan costos de servicio y de línea de material.
// Los valores que se persisten se redondean a esta escala para que releerlos no cambie nada.
const StorageScale = 6

// DirectCost suma de los pasos 1-4 de la cascada: el valor que se guarda como TotalCost,
// redondeado a StorageScale.
func DirectCost(svc entity.Service, p BusinessParams) decimal.Decimal {
	return percentOf(svc.SalePrice, svc.CommissionRate).
		Add(MaterialTotal(svc.Materials)).
		Add(percentOf(svc.SalePrice, p.WeightedPaymentRatePct)).
		Add(percentOf(svc.SalePrice, p.TaxRatePct)).
		Round(StorageScale)
}

// Price devuelve una copia del servicio con TotalCost, GrossProfit y ProfitMarginPct
// recalculados con los parámetros dados. Es idempotente.
func Price(svc entity.Service, p BusinessParams) entity.Service {
	out := svc
	out.Materials = slices.Clone(svc.Materials)
	out.TotalCost = DirectCost(svc, p)
	out.GrossProfit = svc.SalePrice.Sub(out.TotalCost)
	out.ProfitMarginPct = shareOf(out.GrossProfit, svc.SalePrice).Round(StorageScale)
	return out
}

// MaterialTotal suma los costos congelados de las líneas de material.
func MaterialTotal(lines []entity.MaterialCost) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Cost)
	}
	return total
}

// MaterialLineCost costo de una línea al momento de asignar el material al servicio,
// redondeado a StorageScale.
func MaterialLineCost(m entity.Material, quantity decimal.Decimal) decimal.Decimal {
	return m.UnitCost().Mul(quantity).Round(StorageScale)
}

// percentOf base * pct / 100.
func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// shareOf part / whole * 100, cero si whole es cero.
func shareOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
