package dto

import "github.com/shopspring/decimal"

// PeriodSummaryDTO resumen financiero de un mes. Montos y porcentajes redondeados a 2 decimales.
type PeriodSummaryDTO struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Label            string          `json:"label"` // ej: "Abril 2025"
	GrossRevenue     decimal.Decimal `json:"gross_revenue"`
	DirectCosts      decimal.Decimal `json:"direct_costs"`
	IndirectCosts    decimal.Decimal `json:"indirect_costs"`
	Commissions      decimal.Decimal `json:"commissions"`
	Taxes            decimal.Decimal `json:"taxes"`
	ServiceCount     int             `json:"service_count"`
	AverageTicket    decimal.Decimal `json:"average_ticket"`
	NetResult        decimal.Decimal `json:"net_result"`
	ProfitMarginPct  decimal.Decimal `json:"profit_margin_pct"`
	DirectCostsPct   decimal.Decimal `json:"direct_costs_pct"`
	IndirectCostsPct decimal.Decimal `json:"indirect_costs_pct"`
	CommissionsPct   decimal.Decimal `json:"commissions_pct"`
	TaxesPct         decimal.Decimal `json:"taxes_pct"`
}

// YearSummaryDTO doce meses más el acumulado del año.
type YearSummaryDTO struct {
	Year   int                `json:"year"`
	Months []PeriodSummaryDTO `json:"months"`
	Total  PeriodSummaryDTO   `json:"total"`
}
