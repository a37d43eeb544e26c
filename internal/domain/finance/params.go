package finance

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// depreciationMonths plazo fijo de depreciación del valor mobilizado.
var depreciationMonths = decimal.NewFromInt(60)

// BusinessParams snapshot inmutable de los parámetros del negocio.
// No tiene identidad propia: es función pura de sus fuentes y vale solo para el instante en que se
// calculó. DirectExpensePct, WeightedPaymentRatePct, WorkingDaysPerYear y MonthlyDepreciation son
// derivados y se recalculan en cada Aggregate.
type BusinessParams struct {
	DesiredProfitPct       decimal.Decimal
	IndirectExpensePct     decimal.Decimal
	DirectExpensePct       decimal.Decimal
	TaxRatePct             decimal.Decimal
	WeightedPaymentRatePct decimal.Decimal
	WorkingDaysPerYear     int
	MobilizedValue         decimal.Decimal
	TotalToDepreciate      decimal.Decimal
	MonthlyDepreciation    decimal.Decimal
	TeamSize               int
	GoalType               string
	GoalTarget             decimal.Decimal

	// Entradas de segmento conservadas para poder reutilizarlas cuando una fuente no carga.
	PaymentMethods []entity.PaymentMethod // ya canonicalizados
	WorkingDays    entity.WorkingDaysConfig
}

// Sources las tres fuentes independientes de BusinessParams. Una fuente nil (o
// PaymentMethodsLoaded en false) significa "aún no disponible / falló la carga".
type Sources struct {
	PaymentMethods       []entity.PaymentMethod
	PaymentMethodsLoaded bool
	Settings             *entity.BusinessSettings
	Goal                 *entity.Goal
}

// DefaultBusinessParams snapshot usado mientras ninguna fuente está disponible.
func DefaultBusinessParams() BusinessParams {
	return derive(BusinessParams{
		DesiredProfitPct:   decimal.NewFromInt(20),
		IndirectExpensePct: decimal.NewFromInt(25),
		TaxRatePct:         decimal.NewFromInt(6),
		MobilizedValue:     decimal.Zero,
		TotalToDepreciate:  decimal.Zero,
		TeamSize:           1,
		GoalType:           entity.GoalTypeRevenue,
		GoalTarget:         decimal.Zero,
		PaymentMethods:     []entity.PaymentMethod{},
		WorkingDays:        entity.DefaultWorkingDays(),
	})
}

// Aggregate construye un snapshot nuevo desde cero a partir de las fuentes.
//
// Para cada segmento (pagos, configuración, metas) se usa la fuente si está cargada; si no, el
// valor del snapshot previous; si previous es nil, el valor por defecto. Los campos derivados se
// recalculan siempre, nunca se parchean, así que dos llamadas con las mismas entradas producen
// snapshots iguales.
func Aggregate(src Sources, previous *BusinessParams) BusinessParams {
	base := DefaultBusinessParams()
	if previous != nil {
		base = *previous
	}

	p := BusinessParams{}

	// Segmento pagos
	if src.PaymentMethodsLoaded {
		p.PaymentMethods = CanonicalPaymentMethods(src.PaymentMethods)
	} else {
		p.PaymentMethods = slices.Clone(base.PaymentMethods)
		if p.PaymentMethods == nil {
			p.PaymentMethods = []entity.PaymentMethod{}
		}
	}

	// Segmento configuración (márgenes, impuestos, depreciación, calendario)
	if s := src.Settings; s != nil {
		p.DesiredProfitPct = s.DesiredProfitPct
		p.IndirectExpensePct = s.IndirectExpensePct
		p.TaxRatePct = s.TaxRatePct
		p.MobilizedValue = s.MobilizedValue
		p.TotalToDepreciate = s.TotalToDepreciate
		p.TeamSize = s.TeamSize
		if s.WorkingDays != nil {
			p.WorkingDays = cloneWorkingDays(*s.WorkingDays)
		} else {
			p.WorkingDays = cloneWorkingDays(base.WorkingDays)
		}
	} else {
		p.DesiredProfitPct = base.DesiredProfitPct
		p.IndirectExpensePct = base.IndirectExpensePct
		p.TaxRatePct = base.TaxRatePct
		p.MobilizedValue = base.MobilizedValue
		p.TotalToDepreciate = base.TotalToDepreciate
		p.TeamSize = base.TeamSize
		p.WorkingDays = cloneWorkingDays(base.WorkingDays)
	}

	// Segmento metas
	if g := src.Goal; g != nil {
		p.GoalType = g.Type
		p.GoalTarget = g.Target
	} else {
		p.GoalType = base.GoalType
		p.GoalTarget = base.GoalTarget
	}

	return derive(p)
}

// derive recalcula todos los campos derivados a partir de las entradas del snapshot.
func derive(p BusinessParams) BusinessParams {
	p.DirectExpensePct = hundred.Sub(p.DesiredProfitPct).Sub(p.IndirectExpensePct)
	p.WeightedPaymentRatePct = WeightedRate(p.PaymentMethods)
	p.WorkingDaysPerYear = WorkingDaysPerYear(p.WorkingDays)
	p.MonthlyDepreciation = p.TotalToDepreciate.Div(depreciationMonths)
	return p
}

// CanonicalPaymentMethods elimina duplicados por nombre (sin distinguir mayúsculas ni espacios
// en los extremos). En cada grupo de colisión:
//   - gana la entrada con mayor DistributionPct (en empate, la primera vista);
//   - IsActive es el OR de todo el grupo;
//   - si la elegida tiene TaxRate cero, toma la primera tarifa distinta de cero del grupo.
//
// El orden de salida es el de la primera aparición de cada nombre.
func CanonicalPaymentMethods(methods []entity.PaymentMethod) []entity.PaymentMethod {
	fold := cases.Fold()
	index := make(map[string]int, len(methods))
	groups := make([][]entity.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		key := fold.String(strings.TrimSpace(m.Name))
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], m)
	}

	out := make([]entity.PaymentMethod, 0, len(groups))
	for _, g := range groups {
		out = append(out, mergePaymentGroup(g))
	}
	return out
}

func mergePaymentGroup(group []entity.PaymentMethod) entity.PaymentMethod {
	chosen := group[0]
	active := false
	for _, m := range group {
		if m.DistributionPct.GreaterThan(chosen.DistributionPct) {
			chosen = m
		}
		active = active || m.IsActive
	}
	if chosen.TaxRate.IsZero() {
		for _, m := range group {
			if !m.TaxRate.IsZero() {
				chosen.TaxRate = m.TaxRate
				break
			}
		}
	}
	chosen.IsActive = active
	return chosen
}

func cloneWorkingDays(cfg entity.WorkingDaysConfig) entity.WorkingDaysConfig {
	out := entity.WorkingDaysConfig{Weekdays: cfg.Weekdays}
	out.Holidays = slices.Clone(cfg.Holidays)
	return out
}
