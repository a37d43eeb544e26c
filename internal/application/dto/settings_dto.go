package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HolidayDTO feriado (fecha YYYY-MM-DD).
type HolidayDTO struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Name string `json:"name" validate:"max=100"`
}

// SettingsRequest entrada de PUT /api/settings. Weekdays: índice 0 = domingo.
type SettingsRequest struct {
	DesiredProfitPct   decimal.Decimal `json:"lucro_desejado" validate:"min=0,max=100"`
	IndirectExpensePct decimal.Decimal `json:"despesas_indiretas_depreciacao" validate:"min=0,max=100"`
	TaxRatePct         decimal.Decimal `json:"impostos_rate" validate:"min=0,max=100"`
	MobilizedValue     decimal.Decimal `json:"valor_mobilizado" validate:"min=0"`
	TotalToDepreciate  decimal.Decimal `json:"total_depreciar" validate:"min=0"`
	TeamSize           int             `json:"team_size" validate:"min=0"`
	Weekdays           [7]bool         `json:"weekdays"`
	Holidays           []HolidayDTO    `json:"holidays" validate:"dive"`
}

// SettingsResponse configuración guardada del salón.
type SettingsResponse struct {
	DesiredProfitPct   decimal.Decimal `json:"lucro_desejado"`
	IndirectExpensePct decimal.Decimal `json:"despesas_indiretas_depreciacao"`
	TaxRatePct         decimal.Decimal `json:"impostos_rate"`
	MobilizedValue     decimal.Decimal `json:"valor_mobilizado"`
	TotalToDepreciate  decimal.Decimal `json:"total_depreciar"`
	TeamSize           int             `json:"team_size"`
	Weekdays           [7]bool         `json:"weekdays"`
	Holidays           []HolidayDTO    `json:"holidays"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// GoalRequest entrada de PUT /api/goals.
type GoalRequest struct {
	Type   string          `json:"type" validate:"required,oneof=faturamento atendimentos"`
	Target decimal.Decimal `json:"target" validate:"min=0"`
}

// GoalResponse meta vigente.
type GoalResponse struct {
	Type      string          `json:"type"`
	Target    decimal.Decimal `json:"target"`
	UpdatedAt time.Time       `json:"updated_at"`
}
