package finance_test

import (
	"testing"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

func TestWeightedRate_MediaPonderada(t *testing.T) {
	methods := []entity.PaymentMethod{
		method("Crédito", true, "50", "3"),
		method("Pix", true, "50", "0"),
	}
	assertDec(t, "1.5", finance.WeightedRate(methods))
}

func TestWeightedRate_NoEsPromedioSimple(t *testing.T) {
	methods := []entity.PaymentMethod{
		method("Crédito", true, "80", "4"),
		method("Débito", true, "20", "1"),
	}
	// (4*80 + 1*20) / 100 = 3.4 ; el promedio simple sería 2.5
	assertDec(t, "3.4", finance.WeightedRate(methods))
}

func TestWeightedRate_DistribucionCeroDevuelveCero(t *testing.T) {
	cases := map[string][]entity.PaymentMethod{
		"sin métodos":       nil,
		"todos inactivos":   {method("Crédito", false, "100", "3")},
		"distribución cero": {method("Crédito", true, "0", "3"), method("Pix", true, "0", "1")},
		"lista vacía":       {},
	}
	for name, methods := range cases {
		t.Run(name, func(t *testing.T) {
			assertDec(t, "0", finance.WeightedRate(methods))
		})
	}
}

func TestWeightedRate_IgnoraInactivos(t *testing.T) {
	methods := []entity.PaymentMethod{
		method("Crédito", true, "100", "2"),
		method("Voucher", false, "100", "10"),
	}
	assertDec(t, "2", finance.WeightedRate(methods))
}

func TestWeightedRate_ActivoConDistribucionCeroNoAporta(t *testing.T) {
	methods := []entity.PaymentMethod{
		method("Crédito", true, "100", "2"),
		method("Boleto", true, "0", "50"),
	}
	assertDec(t, "2", finance.WeightedRate(methods))
}
