package dto

import "time"

// CreateSalonRequest entrada para dar de alta un salón.
type CreateSalonRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Document string `json:"document" validate:"required,max=20"` // CNPJ/CPF
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// SalonResponse salida de un salón.
type SalonResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
