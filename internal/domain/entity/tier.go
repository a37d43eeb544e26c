package entity

import "github.com/shopspring/decimal"

// Tier patente: banda de facturación acumulada usada en la gamificación del dashboard.
type Tier struct {
	ID           string
	SalonID      string
	Name         string
	MinThreshold decimal.Decimal
	Icon         string
}
