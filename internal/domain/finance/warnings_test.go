package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

func codes(ws []finance.Warning) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

func TestValidateDistribution(t *testing.T) {
	ok := []entity.PaymentMethod{
		method("Crédito", true, "33.33", "3"),
		method("Débito", true, "33.33", "1"),
		method("Pix", true, "33.34", "0"),
		method("Cheque", false, "50", "0"),
	}
	assert.Empty(t, finance.ValidateDistribution(ok))

	withinTolerance := []entity.PaymentMethod{method("Crédito", true, "99.995", "3")}
	assert.Empty(t, finance.ValidateDistribution(withinTolerance))

	bad := []entity.PaymentMethod{method("Crédito", true, "70", "3")}
	ws := finance.ValidateDistribution(bad)
	require.Len(t, ws, 1)
	assert.Equal(t, finance.WarnDistributionSum, ws[0].Code)
}

func TestValidateTiers(t *testing.T) {
	assert.Empty(t, finance.ValidateTiers(patentes()))

	bad := []entity.Tier{
		{Name: "A", MinThreshold: d("-10")},
		{Name: "B", MinThreshold: d("500")},
		{Name: "C", MinThreshold: d("500")},
	}
	got := codes(finance.ValidateTiers(bad))
	assert.Contains(t, got, finance.WarnNegativeThreshold)
	assert.Contains(t, got, finance.WarnTierOrder)
	assert.Contains(t, got, finance.WarnTierNoZero)
}

func TestValidateParams(t *testing.T) {
	assert.Empty(t, finance.ValidateParams(finance.Aggregate(buildSources(), nil)))

	src := buildSources()
	src.Settings.DesiredProfitPct = d("80")
	src.Settings.IndirectExpensePct = d("30")
	cal := entity.WorkingDaysConfig{Holidays: []entity.Holiday{
		{Date: day(2025, time.May, 1)},
		{Date: time.Date(2025, time.May, 1, 18, 0, 0, 0, time.UTC)},
	}}
	src.Settings.WorkingDays = &cal
	src.PaymentMethods = []entity.PaymentMethod{method("Pix", true, "40", "0")}

	got := codes(finance.ValidateParams(finance.Aggregate(src, nil)))
	assert.ElementsMatch(t, []string{
		finance.WarnDistributionSum,
		finance.WarnDuplicateHoliday,
		finance.WarnNegativeDirect,
		finance.WarnNegativeDays,
	}, got)
}
