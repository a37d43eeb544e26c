package dto

import "github.com/shopspring/decimal"

// TierDTO patente.
type TierDTO struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name" validate:"required,max=100"`
	MinThreshold decimal.Decimal `json:"min_revenue_threshold"`
	Icon         string          `json:"icon" validate:"max=100"`
}

// TierTableRequest entrada de PUT /api/tiers (reemplaza la tabla completa).
type TierTableRequest struct {
	Tiers []TierDTO `json:"tiers" validate:"required,min=1,dive"`
}

// TierTableResponse tabla ordenada por umbral con avisos de consistencia.
type TierTableResponse struct {
	Tiers    []TierDTO    `json:"tiers"`
	Warnings []WarningDTO `json:"warnings"`
}

// TierProgressDTO progreso del salón en la tabla de patentes.
type TierProgressDTO struct {
	CumulativeRevenue decimal.Decimal `json:"cumulative_revenue"`
	Current           *TierDTO        `json:"current"`
	Next              *TierDTO        `json:"next"`
	ProgressPct       decimal.Decimal `json:"progress_pct"`
	RemainingToNext   decimal.Decimal `json:"remaining_to_next"`
}
