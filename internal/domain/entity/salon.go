package entity

import "time"

// Salon representa un salón de belleza (tenant del sistema).
type Salon struct {
	ID        string
	Name      string
	Document  string // CNPJ/CPF del titular
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
