package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

func day(y int, m time.Month, dd int) time.Time {
	return time.Date(y, m, dd, 10, 0, 0, 0, time.UTC)
}

func method(name string, active bool, dist, tax string) entity.PaymentMethod {
	return entity.PaymentMethod{Name: name, IsActive: active, DistributionPct: d(dist), TaxRate: d(tax)}
}

func in(id string, date time.Time, amount string) entity.CashFlowEntry {
	return entity.CashFlowEntry{ID: id, Date: date, Type: entity.EntryTypeIn, Amount: d(amount)}
}

func out(id string, date time.Time, amount string) entity.CashFlowEntry {
	return entity.CashFlowEntry{ID: id, Date: date, Type: entity.EntryTypeOut, Amount: d(amount)}
}
