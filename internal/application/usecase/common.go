package usecase

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain"
)

const dateLayout = "2006-01-02"

// money redondeo de salida: todo monto y porcentaje expuesto va con 2 decimales.
func money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", s, domain.ErrInvalidInput)
	}
	return t, nil
}

// currentPeriod completa mes y año ausentes con el mes en curso.
func currentPeriod(month, year int, now time.Time) (int, int) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}
