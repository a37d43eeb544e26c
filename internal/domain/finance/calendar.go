package finance

import "github.com/jhoicas/salon-finance-api/internal/domain/entity"

const weeksPerYear = 52

// WorkingDaysPerYear días trabajados al año: díasPorSemana * 52 - feriados.
//
// Modelo simplificado: cada feriado se descuenta una vez aunque caiga en un día de la semana
// que el salón no trabaja. El resultado puede ser negativo; se devuelve crudo para que el
// llamador detecte la configuración inconsistente (ver ValidateParams).
func WorkingDaysPerYear(cfg entity.WorkingDaysConfig) int {
	daysPerWeek := 0
	for _, worked := range cfg.Weekdays {
		if worked {
			daysPerWeek++
		}
	}
	return daysPerWeek*weeksPerYear - len(cfg.Holidays)
}
