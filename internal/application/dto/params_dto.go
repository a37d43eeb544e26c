package dto

import "github.com/shopspring/decimal"

// BusinessParamsDTO snapshot de parámetros derivados (GET /api/params).
// Montos y porcentajes redondeados a 2 decimales.
type BusinessParamsDTO struct {
	DesiredProfitPct       decimal.Decimal `json:"lucro_desejado"`
	IndirectExpensePct     decimal.Decimal `json:"despesas_indiretas_depreciacao"`
	DirectExpensePct       decimal.Decimal `json:"despesas_diretas"`
	TaxRatePct             decimal.Decimal `json:"impostos_rate"`
	WeightedPaymentRatePct decimal.Decimal `json:"weighted_average_rate"`
	WorkingDaysPerYear     int             `json:"working_days_per_year"`
	MobilizedValue         decimal.Decimal `json:"valor_mobilizado"`
	TotalToDepreciate      decimal.Decimal `json:"total_depreciar"`
	MonthlyDepreciation    decimal.Decimal `json:"depreciacao_mensal"`
	TeamSize               int             `json:"team_size"`
	GoalType               string          `json:"goal_type"`
	GoalTarget             decimal.Decimal `json:"goal_target"`
	Warnings               []WarningDTO    `json:"warnings"`
	// Fuentes que no cargaron y se tomaron del snapshot anterior o de los valores por defecto.
	FallbackSegments []string `json:"fallback_segments,omitempty"`
}
