package cache

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

func TestSnapshotKey(t *testing.T) {
	assert.Equal(t, "params:snapshot:abc", snapshotKey("abc"))
}

func TestSnapshotCodec_ConservaDecimalesYCalendario(t *testing.T) {
	holiday := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	p := finance.DefaultBusinessParams()
	p.WeightedPaymentRatePct = decimal.RequireFromString("2.3456")
	p.WorkingDaysPerYear = 259
	p.PaymentMethods = []entity.PaymentMethod{{ID: "pm-1", Name: "Crédito", IsActive: true,
		DistributionPct: decimal.NewFromInt(100), TaxRate: decimal.RequireFromString("2.5")}}
	p.WorkingDays = entity.WorkingDaysConfig{
		Weekdays: [7]bool{false, true, true, true, true, true, false},
		Holidays: []entity.Holiday{{ID: "h-1", Date: holiday, Name: "Natal"}},
	}

	payload, err := encodeSnapshot(p)
	require.NoError(t, err)
	got, err := decodeSnapshot(payload)
	require.NoError(t, err)

	assert.True(t, got.WeightedPaymentRatePct.Equal(p.WeightedPaymentRatePct))
	assert.Equal(t, 259, got.WorkingDaysPerYear)
	require.Len(t, got.PaymentMethods, 1)
	assert.True(t, got.PaymentMethods[0].TaxRate.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, p.WorkingDays.Weekdays, got.WorkingDays.Weekdays)
	require.Len(t, got.WorkingDays.Holidays, 1)
	assert.True(t, got.WorkingDays.Holidays[0].Date.Equal(holiday))
}

func TestDecodeSnapshot_JSONInvalido(t *testing.T) {
	_, err := decodeSnapshot([]byte("{"))
	assert.Error(t, err)
}
