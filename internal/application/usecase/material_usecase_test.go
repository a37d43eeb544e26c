package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain"
)

func TestMaterialCreate_CostoUnitarioDerivado(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	out, err := uc.Create(context.Background(), salonID, dto.MaterialRequest{
		Name: "Oxidante", BatchQuantity: d("900"), BatchPrice: d("45"), Unit: "ml",
	})
	require.NoError(t, err)
	assertDec(t, "0.05", out.UnitCost)
}

func TestMaterialUpdate_LoteSinCantidad(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())
	ctx := context.Background()
	created, err := uc.Create(ctx, salonID, dto.MaterialRequest{Name: "Tinta", BatchQuantity: d("10"), BatchPrice: d("125"), Unit: "un"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, salonID, created.ID, dto.MaterialRequest{Name: "Tinta", BatchQuantity: d("0"), BatchPrice: d("125"), Unit: "un"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, "otro-salon", created.ID, dto.MaterialRequest{Name: "Tinta", BatchQuantity: d("5"), BatchPrice: d("125"), Unit: "un"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(ctx, "otro-salon", created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
