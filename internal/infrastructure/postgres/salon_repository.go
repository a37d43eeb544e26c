package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.SalonRepository = (*SalonRepo)(nil)

// SalonRepo implementación del puerto SalonRepository sobre PostgreSQL.
type SalonRepo struct {
	q Querier
}

// NewSalonRepository construye el adaptador de persistencia para salones.
func NewSalonRepository(q Querier) *SalonRepo {
	return &SalonRepo{q: q}
}

// Create persiste un salón. El documento es único.
func (r *SalonRepo) Create(ctx context.Context, s *entity.Salon) error {
	query := `
		INSERT INTO salons (id, name, document, phone, email, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.Document, s.Phone, s.Email, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert salon: %w", err)
	}
	return nil
}

// GetByID obtiene un salón por ID; (nil, nil) si no existe.
func (r *SalonRepo) GetByID(ctx context.Context, id string) (*entity.Salon, error) {
	query := `
		SELECT id, name, document, phone, email, status, created_at, updated_at
		FROM salons WHERE id = $1`
	var s entity.Salon
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Document, &s.Phone, &s.Email, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get salon: %w", err)
	}
	return &s, nil
}
