package usecase_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

const salonID = "salon-1"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

// paramsFixture fuentes de parámetros con valores de referencia:
// lucro 20, indirectas 25, impuestos 6, tarjeta ponderada 2,5 (100% crédito a 2,5).
type paramsFixture struct {
	payments  *fakePaymentRepo
	settings  *fakeSettingsRepo
	goals     *fakeGoalRepo
	snapshots *fakeSnapshotStore
	uc        *usecase.ParamsUseCase
}

func newParamsFixture() *paramsFixture {
	f := &paramsFixture{
		payments: newFakePaymentRepo(entity.PaymentMethod{
			ID: "pm-1", SalonID: salonID, Name: "Crédito", IsActive: true,
			DistributionPct: d("100"), TaxRate: d("2.5"),
		}),
		settings:  newFakeSettingsRepo(),
		goals:     newFakeGoalRepo(),
		snapshots: newFakeSnapshotStore(),
	}
	wd := entity.DefaultWorkingDays()
	f.settings.rows[salonID] = entity.BusinessSettings{
		SalonID:            salonID,
		DesiredProfitPct:   d("20"),
		IndirectExpensePct: d("25"),
		TaxRatePct:         d("6"),
		MobilizedValue:     d("50000"),
		TotalToDepreciate:  d("30000"),
		TeamSize:           3,
		WorkingDays:        &wd,
	}
	f.goals.rows[salonID] = entity.Goal{SalonID: salonID, Type: entity.GoalTypeRevenue, Target: d("40000")}
	f.uc = usecase.NewParamsUseCase(f.payments, f.settings, f.goals, f.snapshots, zerolog.Nop())
	return f
}
