package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

func patentes() dto.TierTableRequest {
	return dto.TierTableRequest{Tiers: []dto.TierDTO{
		{Name: "Ouro", MinThreshold: d("6000"), Icon: "gold"},
		{Name: "Bronze", MinThreshold: d("0"), Icon: "bronze"},
		{Name: "Prata", MinThreshold: d("3000"), Icon: "silver"},
	}}
}

func TestTierReplace_OrdenaYSinAvisos(t *testing.T) {
	uc := usecase.NewTierUseCase(newFakeTierRepo(), &fakeCashRepo{})

	out, err := uc.Replace(context.Background(), salonID, patentes())
	require.NoError(t, err)

	require.Len(t, out.Tiers, 3)
	assert.Equal(t, "Bronze", out.Tiers[0].Name)
	assert.Equal(t, "Ouro", out.Tiers[2].Name)
	assert.NotEmpty(t, out.Tiers[0].ID)
	assert.Empty(t, out.Warnings)
}

func TestTierReplace_TablaInconsistenteDevuelveAvisos(t *testing.T) {
	uc := usecase.NewTierUseCase(newFakeTierRepo(), &fakeCashRepo{})
	req := dto.TierTableRequest{Tiers: []dto.TierDTO{
		{Name: "A", MinThreshold: d("100")},
		{Name: "B", MinThreshold: d("100")},
	}}

	out, err := uc.Replace(context.Background(), salonID, req)
	require.NoError(t, err)

	codes := []string{}
	for _, w := range out.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, finance.WarnTierOrder)
	assert.Contains(t, codes, finance.WarnTierNoZero)
}

func TestTierProgress_FacturacionAcumulada(t *testing.T) {
	cash := &fakeCashRepo{}
	tiers := usecase.NewTierUseCase(newFakeTierRepo(), cash)
	ledger := usecase.NewCashFlowUseCase(cash)
	ctx := context.Background()

	_, err := tiers.Replace(ctx, salonID, patentes())
	require.NoError(t, err)
	for _, req := range []dto.CashFlowEntryRequest{
		entrada("2025-01-10", "2000"),
		entrada("2025-02-10", "2500"),
		saida("2025-02-11", "4000"), // las salidas no restan facturación
	} {
		_, err := ledger.Create(ctx, salonID, req)
		require.NoError(t, err)
	}

	p, err := tiers.Progress(ctx, salonID)
	require.NoError(t, err)

	assertDec(t, "4500", p.CumulativeRevenue)
	require.NotNil(t, p.Current)
	require.NotNil(t, p.Next)
	assert.Equal(t, "Prata", p.Current.Name)
	assert.Equal(t, "Ouro", p.Next.Name)
	assertDec(t, "50", p.ProgressPct)
	assertDec(t, "1500", p.RemainingToNext)
}

func TestTierProgress_SinPatentes(t *testing.T) {
	uc := usecase.NewTierUseCase(newFakeTierRepo(), &fakeCashRepo{})

	p, err := uc.Progress(context.Background(), salonID)
	require.NoError(t, err)
	assert.Nil(t, p.Current)
	assert.Nil(t, p.Next)
	assertDec(t, "0", p.ProgressPct)
}
