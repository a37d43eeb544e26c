package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/infrastructure/cache"
	apphttp "github.com/jhoicas/salon-finance-api/internal/interfaces/http"
)

type apiFixture struct {
	app      *fiber.App
	payments *memPaymentMethods
	cash     *memCashFlow
}

// newAPI monta el router completo con repositorios en memoria.
func newAPI() *apiFixture {
	payments := &memPaymentMethods{}
	cash := &memCashFlow{}
	params := usecase.NewParamsUseCase(payments, memSettings{}, memGoals{}, cache.NewMemorySnapshotStore(), zerolog.Nop())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PaymentMethodUC: usecase.NewPaymentMethodUseCase(payments),
		ParamsUC:        params,
		CashFlowUC:      usecase.NewCashFlowUseCase(cash),
		Tokens:          testSigner,
	})
	return &apiFixture{app: app, payments: payments, cash: cash}
}

func (f *apiFixture) do(t *testing.T, method, path, role string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestPaymentMethods_CrearYListarConTasaPonderada(t *testing.T) {
	api := newAPI()

	for _, pm := range []dto.PaymentMethodRequest{
		{Name: "Pix", IsActive: true, DistributionPct: decimal.NewFromInt(40), TaxRate: decimal.Zero},
		{Name: "Crédito", IsActive: true, DistributionPct: decimal.NewFromInt(60), TaxRate: decimal.NewFromInt(5)},
	} {
		resp := api.do(t, http.MethodPost, "/api/payment-methods", "owner", pm)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := api.do(t, http.MethodGet, "/api/payment-methods", "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.PaymentMethodListResponse
	decode(t, resp, &out)

	assert.Len(t, out.Items, 2)
	assert.True(t, out.WeightedRate.Equal(decimal.NewFromInt(3)), "got %s", out.WeightedRate)
	assert.Empty(t, out.Warnings)
}

func TestPaymentMethods_ValidacionDevuelve422(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodPost, "/api/payment-methods", "owner", map[string]interface{}{
		"name": "Débito", "is_active": true, "distribution_percentage": 150, "tax_rate": 1.5,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "max", out.Fields["DistributionPct"])
	assert.Empty(t, api.payments.items)
}

func TestPaymentMethods_StaffNoPuedeCrear(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodPost, "/api/payment-methods", "staff", dto.PaymentMethodRequest{
		Name: "Pix", IsActive: true, DistributionPct: decimal.NewFromInt(100),
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPaymentMethods_EliminarInexistenteDevuelve404(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodDelete, "/api/payment-methods/no-existe", "owner", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestParams_FuenteCaidaNoFalla(t *testing.T) {
	api := newAPI()
	api.payments.fail = true

	resp := api.do(t, http.MethodGet, "/api/params", "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.BusinessParamsDTO
	decode(t, resp, &out)
	assert.Contains(t, out.FallbackSegments, usecase.SegmentPayments)
	assert.True(t, out.WeightedPaymentRatePct.IsZero())
}

func TestCashFlow_ExtractoConSaldoAcumulado(t *testing.T) {
	api := newAPI()

	entries := []dto.CashFlowEntryRequest{
		{Date: "2025-01-10", Description: "Coloração", Type: "entrada", Amount: decimal.NewFromInt(100), PaymentMethod: "Pix"},
		{Date: "2025-01-05", Description: "Aluguel", Type: "saida", Amount: decimal.NewFromInt(30), Category: "fixas"},
	}
	for _, e := range entries {
		resp := api.do(t, http.MethodPost, "/api/cashflow", "staff", e)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := api.do(t, http.MethodGet, "/api/cashflow", "staff", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CashFlowStatementDTO
	decode(t, resp, &out)

	require.Len(t, out.Items, 2)
	assert.Equal(t, "saida", out.Items[0].Type)
	assert.True(t, out.Items[0].RunningBalance.Equal(decimal.NewFromInt(-30)))
	assert.True(t, out.Items[1].RunningBalance.Equal(decimal.NewFromInt(70)))
	assert.True(t, out.ClosingBalance.Equal(decimal.NewFromInt(70)))
}

func TestCashFlow_SaidaSinCategoriaDevuelve422(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodPost, "/api/cashflow", "staff", dto.CashFlowEntryRequest{
		Date: "2025-01-05", Description: "Aluguel", Type: "saida", Amount: decimal.NewFromInt(30),
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Equal(t, "required_if", out.Fields["Category"])
}

func TestCashFlow_EdicionDevuelve409(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodPut, "/api/cashflow/cualquiera", "owner", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCashFlow_StaffNoPuedeEliminar(t *testing.T) {
	api := newAPI()
	resp := api.do(t, http.MethodDelete, "/api/cashflow/cualquiera", "staff", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRutasProtegidas_SinTokenDevuelve401(t *testing.T) {
	api := newAPI()
	for _, path := range []string{"/api/params", "/api/cashflow", "/api/payment-methods"} {
		resp := api.do(t, http.MethodGet, path, "", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
