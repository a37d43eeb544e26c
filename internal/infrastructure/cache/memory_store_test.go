package cache_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/infrastructure/cache"
)

func TestMemorySnapshotStore_SinSnapshot(t *testing.T) {
	store := cache.NewMemorySnapshotStore()
	got, err := store.Get(context.Background(), "salon-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemorySnapshotStore_GuardaPorSalon(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemorySnapshotStore()

	p := finance.DefaultBusinessParams()
	p.DesiredProfitPct = decimal.NewFromInt(30)
	require.NoError(t, store.Set(ctx, "salon-1", p))

	got, err := store.Get(ctx, "salon-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.DesiredProfitPct.Equal(decimal.NewFromInt(30)))

	other, err := store.Get(ctx, "salon-2")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemorySnapshotStore_NoCompartePaymentMethods(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemorySnapshotStore()

	p := finance.DefaultBusinessParams()
	p.PaymentMethods = []entity.PaymentMethod{{Name: "Pix", IsActive: true, DistributionPct: decimal.NewFromInt(100)}}
	require.NoError(t, store.Set(ctx, "salon-1", p))
	p.PaymentMethods[0].Name = "Modificado"

	got, err := store.Get(ctx, "salon-1")
	require.NoError(t, err)
	assert.Equal(t, "Pix", got.PaymentMethods[0].Name)
}
