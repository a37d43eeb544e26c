package finance

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// Códigos de inconsistencia de configuración. Nunca son fatales: el motor calcula igual y el
// llamador decide cómo mostrarlos.
const (
	WarnDistributionSum   = "DISTRIBUTION_NOT_100"
	WarnNegativeThreshold = "TIER_NEGATIVE_THRESHOLD"
	WarnTierOrder         = "TIER_NOT_INCREASING"
	WarnTierNoZero        = "TIER_LOWEST_NOT_ZERO"
	WarnDuplicateHoliday  = "HOLIDAY_DUPLICATE_DATE"
	WarnNegativeDirect    = "DIRECT_EXPENSE_NEGATIVE"
	WarnNegativeDays      = "WORKING_DAYS_NEGATIVE"
)

var distributionTolerance = decimal.RequireFromString("0.01")

// Warning inconsistencia detectada en los datos de entrada.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateDistribution la suma de distribución de los métodos activos debe ser 100 (± 0,01).
func ValidateDistribution(methods []entity.PaymentMethod) []Warning {
	total := decimal.Zero
	for _, m := range methods {
		if m.IsActive {
			total = total.Add(m.DistributionPct)
		}
	}
	if total.Sub(hundred).Abs().GreaterThan(distributionTolerance) {
		return []Warning{{
			Code:    WarnDistributionSum,
			Message: fmt.Sprintf("la distribución de los métodos activos suma %s%%, debería sumar 100%%", total.String()),
		}}
	}
	return nil
}

// ValidateTiers umbrales no negativos, estrictamente crecientes y con el menor en cero.
func ValidateTiers(tiers []entity.Tier) []Warning {
	if len(tiers) == 0 {
		return nil
	}
	var out []Warning
	sorted := SortTiers(tiers)
	for i, t := range sorted {
		if t.MinThreshold.IsNegative() {
			out = append(out, Warning{
				Code:    WarnNegativeThreshold,
				Message: fmt.Sprintf("la patente %q tiene umbral negativo", t.Name),
			})
		}
		if i > 0 && t.MinThreshold.Equal(sorted[i-1].MinThreshold) {
			out = append(out, Warning{
				Code:    WarnTierOrder,
				Message: fmt.Sprintf("las patentes %q y %q comparten el umbral %s", sorted[i-1].Name, t.Name, t.MinThreshold.String()),
			})
		}
	}
	if !sorted[0].MinThreshold.IsZero() {
		out = append(out, Warning{
			Code:    WarnTierNoZero,
			Message: "la patente más baja debería empezar en 0",
		})
	}
	return out
}

// ValidateHolidays fechas de feriado únicas.
func ValidateHolidays(cfg entity.WorkingDaysConfig) []Warning {
	seen := make(map[string]bool, len(cfg.Holidays))
	var out []Warning
	for _, h := range cfg.Holidays {
		key := h.Date.Format("2006-01-02")
		if seen[key] {
			out = append(out, Warning{
				Code:    WarnDuplicateHoliday,
				Message: fmt.Sprintf("feriado duplicado en %s", key),
			})
			continue
		}
		seen[key] = true
	}
	return out
}

// ValidateParams revisa un snapshot completo: distribución, calendario y porcentajes.
func ValidateParams(p BusinessParams) []Warning {
	var out []Warning
	out = append(out, ValidateDistribution(p.PaymentMethods)...)
	out = append(out, ValidateHolidays(p.WorkingDays)...)
	if p.DirectExpensePct.IsNegative() {
		out = append(out, Warning{
			Code:    WarnNegativeDirect,
			Message: "lucro desejado + despesas indiretas superan el 100% del precio",
		})
	}
	if p.WorkingDaysPerYear < 0 {
		out = append(out, Warning{
			Code:    WarnNegativeDays,
			Message: fmt.Sprintf("hay más feriados que días trabajados (%d días/año)", p.WorkingDaysPerYear),
		})
	}
	return out
}
