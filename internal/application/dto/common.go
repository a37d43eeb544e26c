package dto

import "github.com/jhoicas/salon-finance-api/internal/domain/finance"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // campo -> regla de validación que falló
}

// WarningDTO inconsistencia de configuración no fatal (ver finance.Warning).
type WarningDTO = finance.Warning

// PeriodRequest parámetros mes/año de los reportes.
type PeriodRequest struct {
	Month int `query:"month" validate:"omitempty,min=1,max=12"` // por defecto el mes actual
	Year  int `query:"year" validate:"omitempty,min=2000,max=2100"`
}
