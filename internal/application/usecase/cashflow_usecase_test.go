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

func entrada(date, amount string) dto.CashFlowEntryRequest {
	return dto.CashFlowEntryRequest{Date: date, Description: "servicio", Type: "entrada", Amount: d(amount), PaymentMethod: "Pix"}
}

func saida(date, amount string) dto.CashFlowEntryRequest {
	return dto.CashFlowEntryRequest{Date: date, Description: "compra", Type: "saida", Amount: d(amount), Category: "insumos"}
}

func seedLedger(t *testing.T, uc *usecase.CashFlowUseCase) {
	t.Helper()
	ctx := context.Background()
	// Cargados fuera de orden a propósito.
	for _, req := range []dto.CashFlowEntryRequest{
		entrada("2025-04-10", "120"),
		entrada("2025-04-01", "100"),
		saida("2025-04-05", "30"),
		entrada("2025-05-02", "50"),
	} {
		_, err := uc.Create(ctx, salonID, req)
		require.NoError(t, err)
	}
}

func TestCashFlowStatement_SaldoAcumuladoOrdenado(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	seedLedger(t, uc)

	st, err := uc.Statement(context.Background(), salonID, dto.CashFlowQuery{})
	require.NoError(t, err)

	require.Len(t, st.Items, 4)
	balances := []string{"100", "70", "190", "240"}
	for i, want := range balances {
		assertDec(t, want, st.Items[i].RunningBalance, "línea %d", i)
	}
	assertDec(t, "270", st.TotalIn)
	assertDec(t, "30", st.TotalOut)
	assertDec(t, "0", st.OpeningBalance)
	assertDec(t, "240", st.ClosingBalance)
}

func TestCashFlowStatement_VentanaIncluyeSaldoAnterior(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	seedLedger(t, uc)

	st, err := uc.Statement(context.Background(), salonID, dto.CashFlowQuery{From: "2025-04-05", To: "2025-04-30"})
	require.NoError(t, err)

	require.Len(t, st.Items, 2)
	assertDec(t, "100", st.OpeningBalance)
	assertDec(t, "70", st.Items[0].RunningBalance)
	assertDec(t, "190", st.Items[1].RunningBalance)
	assertDec(t, "120", st.TotalIn)
	assertDec(t, "30", st.TotalOut)
	assertDec(t, "190", st.ClosingBalance)
}

func TestCashFlowStatement_VentanaInvertida(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	_, err := uc.Statement(context.Background(), salonID, dto.CashFlowQuery{From: "2025-05-01", To: "2025-04-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCashFlowStatement_LibroVacio(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	st, err := uc.Statement(context.Background(), salonID, dto.CashFlowQuery{})
	require.NoError(t, err)
	assert.NotNil(t, st.Items)
	assert.Empty(t, st.Items)
	assertDec(t, "0", st.ClosingBalance)
}

func TestCashFlowCreate_DevuelveSaldoDelLibro(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	seedLedger(t, uc)

	line, err := uc.Create(context.Background(), salonID, saida("2025-04-06", "10"))
	require.NoError(t, err)
	assertDec(t, "60", line.RunningBalance)
}

func TestCashFlowCreate_Validaciones(t *testing.T) {
	uc := usecase.NewCashFlowUseCase(&fakeCashRepo{})
	ctx := context.Background()

	sinMetodo := entrada("2025-04-01", "10")
	sinMetodo.PaymentMethod = ""
	_, err := uc.Create(ctx, salonID, sinMetodo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sinCategoria := saida("2025-04-01", "10")
	sinCategoria.Category = ""
	_, err = uc.Create(ctx, salonID, sinCategoria)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, salonID, entrada("01/04/2025", "10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, salonID, entrada("2025-04-01", "0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCashFlowDelete_RecalculaSaldos(t *testing.T) {
	repo := &fakeCashRepo{}
	uc := usecase.NewCashFlowUseCase(repo)
	seedLedger(t, uc)
	ctx := context.Background()

	var saidaID string
	for _, e := range repo.rows {
		if e.Type == "saida" {
			saidaID = e.ID
		}
	}
	require.NoError(t, uc.Delete(ctx, salonID, saidaID))

	st, err := uc.Statement(ctx, salonID, dto.CashFlowQuery{})
	require.NoError(t, err)
	require.Len(t, st.Items, 3)
	assertDec(t, "100", st.Items[0].RunningBalance)
	assertDec(t, "220", st.Items[1].RunningBalance)

	assert.ErrorIs(t, uc.Delete(ctx, "otro-salon", st.Items[0].ID), domain.ErrNotFound)
}
