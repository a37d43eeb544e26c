package entity

import "time"

// WorkingDaysConfig días de la semana trabajados (índice = time.Weekday, 0 = domingo)
// y feriados en los que el salón no abre.
type WorkingDaysConfig struct {
	Weekdays [7]bool
	Holidays []Holiday
}

// Holiday feriado o día de cierre excepcional. Las fechas deben ser únicas.
type Holiday struct {
	ID   string
	Date time.Time
	Name string
}

// DefaultWorkingDays lunes a sábado, sin feriados.
func DefaultWorkingDays() WorkingDaysConfig {
	return WorkingDaysConfig{
		Weekdays: [7]bool{false, true, true, true, true, true, true},
	}
}
