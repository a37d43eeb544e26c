package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

type serviceFixture struct {
	params    *paramsFixture
	materials *fakeMaterialRepo
	services  *fakeServiceRepo
	uc        *usecase.ServiceUseCase
}

// Insumos de referencia: tinta 10 un por 125 (12,50 c/u) y oxidante 4 un por 30 (7,50 c/u).
func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		params:    newParamsFixture(),
		materials: newFakeMaterialRepo(),
		services:  newFakeServiceRepo(),
	}
	f.materials.rows["tinta"] = entity.Material{ID: "tinta", SalonID: salonID, Name: "Tinta", BatchQuantity: d("10"), BatchPrice: d("125"), Unit: "un"}
	f.materials.rows["oxidante"] = entity.Material{ID: "oxidante", SalonID: salonID, Name: "Oxidante", BatchQuantity: d("4"), BatchPrice: d("30"), Unit: "un"}
	f.materials.rows["ajeno"] = entity.Material{ID: "ajeno", SalonID: "otro-salon", Name: "Ajeno", BatchQuantity: d("1"), BatchPrice: d("1"), Unit: "un"}
	f.uc = usecase.NewServiceUseCase(f.services, f.materials, f.params.uc)
	return f
}

func coloracion() dto.ServiceRequest {
	return dto.ServiceRequest{
		Name:           "Coloración",
		SalePrice:      d("200"),
		CommissionRate: d("40"),
		Materials: []dto.MaterialUsageRequest{
			{MaterialID: "tinta", Quantity: d("1")},
			{MaterialID: "oxidante", Quantity: d("1")},
		},
	}
}

func TestServiceCreate_CalculaCostoDirecto(t *testing.T) {
	f := newServiceFixture()

	out, err := f.uc.Create(context.Background(), salonID, coloracion())
	require.NoError(t, err)

	// 80 comisión + 20 materiales + 5 tarjeta + 12 impuestos
	assertDec(t, "117", out.TotalCost)
	assertDec(t, "83", out.GrossProfit)
	assertDec(t, "41.5", out.ProfitMarginPct)
	require.Len(t, out.Materials, 2)
	assertDec(t, "12.5", out.Materials[0].Cost)
	assertDec(t, "7.5", out.Materials[1].Cost)
}

func TestServiceBreakdown_Cascada(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	created, err := f.uc.Create(ctx, salonID, coloracion())
	require.NoError(t, err)

	b, err := f.uc.Breakdown(ctx, salonID, created.ID)
	require.NoError(t, err)

	assertDec(t, "80", b.CommissionCost)
	assertDec(t, "20", b.MaterialCost)
	assertDec(t, "5", b.CardCost)
	assertDec(t, "12", b.TaxCost)
	assertDec(t, "117", b.TotalDirectCost)
	assertDec(t, "58.5", b.DirectCostPct)
	assertDec(t, "83", b.OperationalMargin)
	assertDec(t, "50", b.OperationalCost)
	assertDec(t, "33", b.PartialProfit)
	assertDec(t, "16.5", b.PartialProfitPct)
	assert.False(t, b.Stale)
}

func TestServiceBreakdown_CostoMaterialCongelado(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	created, err := f.uc.Create(ctx, salonID, coloracion())
	require.NoError(t, err)

	// El proveedor sube la tinta; el servicio ya guardado conserva el costo viejo.
	m := f.materials.rows["tinta"]
	m.BatchPrice = d("250")
	f.materials.rows["tinta"] = m

	b, err := f.uc.Breakdown(ctx, salonID, created.ID)
	require.NoError(t, err)
	assertDec(t, "20", b.MaterialCost)
	assertDec(t, "117", b.TotalDirectCost)
}

func TestServiceBreakdown_StaleYReprice(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	created, err := f.uc.Create(ctx, salonID, coloracion())
	require.NoError(t, err)

	s := f.params.settings.rows[salonID]
	s.TaxRatePct = d("10")
	f.params.settings.rows[salonID] = s

	b, err := f.uc.Breakdown(ctx, salonID, created.ID)
	require.NoError(t, err)
	assert.True(t, b.Stale)
	assertDec(t, "20", b.TaxCost)
	assertDec(t, "117", b.TotalDirectCost, "el costo guardado se usa tal cual")

	res, err := f.uc.Reprice(ctx, salonID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)

	b, err = f.uc.Breakdown(ctx, salonID, created.ID)
	require.NoError(t, err)
	assert.False(t, b.Stale)
	assertDec(t, "125", b.TotalDirectCost)

	res, err = f.uc.Reprice(ctx, salonID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Updated, "sin cambios de parámetros no hay nada que actualizar")
}

func TestServiceReprice_ReleidoConEscalaDeLaBaseNoCambia(t *testing.T) {
	f := newServiceFixture()
	f.services.scale = 6
	ctx := context.Background()
	f.params.payments.rows["pm-1"] = entity.PaymentMethod{
		ID: "pm-1", SalonID: salonID, Name: "Crédito", IsActive: true,
		DistributionPct: d("33.3333"), TaxRate: d("3"),
	}
	f.params.payments.rows["pm-2"] = entity.PaymentMethod{
		ID: "pm-2", SalonID: salonID, Name: "Débito", IsActive: true,
		DistributionPct: d("66.6667"), TaxRate: d("4.99"),
	}
	f.materials.rows["tinta"] = entity.Material{ID: "tinta", SalonID: salonID, Name: "Tinta", BatchQuantity: d("7"), BatchPrice: d("240"), Unit: "un"}

	created, err := f.uc.Create(ctx, salonID, dto.ServiceRequest{
		Name:           "Mechas",
		SalePrice:      d("150"),
		CommissionRate: d("12.5"),
		Materials:      []dto.MaterialUsageRequest{{MaterialID: "tinta", Quantity: d("1")}},
	})
	require.NoError(t, err)

	b, err := f.uc.Breakdown(ctx, salonID, created.ID)
	require.NoError(t, err)
	assert.False(t, b.Stale)

	res, err := f.uc.Reprice(ctx, salonID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 0, f.services.updates)
}

func TestServiceCreate_MaterialDeOtroSalon(t *testing.T) {
	f := newServiceFixture()
	req := coloracion()
	req.Materials = append(req.Materials, dto.MaterialUsageRequest{MaterialID: "ajeno", Quantity: d("1")})

	_, err := f.uc.Create(context.Background(), salonID, req)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.services.rows)
}

func TestServiceBreakdown_NoExiste(t *testing.T) {
	f := newServiceFixture()
	_, err := f.uc.Breakdown(context.Background(), salonID, "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestServiceBreakdownTable_PrecioCero(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()
	f.services.rows["gratis"] = entity.Service{ID: "gratis", SalonID: salonID, Name: "Cortesía"}

	table, err := f.uc.BreakdownTable(ctx, salonID)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assertDec(t, "0", table[0].DirectCostPct)
	assertDec(t, "0", table[0].PartialProfitPct)
}
