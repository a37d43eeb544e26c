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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

const materialColumns = `id, salon_id, name, batch_quantity, batch_price, unit, created_at, updated_at`

// MaterialRepo insumos sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un insumo.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `INSERT INTO materials (` + materialColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query, m.ID, m.SalonID, m.Name, m.BatchQuantity, m.BatchPrice, m.Unit, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo; (nil, nil) si no existe.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, `SELECT `+materialColumns+` FROM materials WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return m, nil
}

// Update actualiza el lote del insumo.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials SET name = $3, batch_quantity = $4, batch_price = $5, unit = $6, updated_at = $7
		WHERE id = $1 AND salon_id = $2`
	tag, err := r.q.Exec(ctx, query, m.ID, m.SalonID, m.Name, m.BatchQuantity, m.BatchPrice, m.Unit, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return affectedOrNotFound(tag)
}

// Delete elimina un insumo. Si algún servicio lo usa devuelve domain.ErrConflict.
func (r *MaterialRepo) Delete(ctx context.Context, salonID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1 AND salon_id = $2`, id, salonID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete material: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListBySalon insumos del salón ordenados por nombre.
func (r *MaterialRepo) ListBySalon(ctx context.Context, salonID string) ([]entity.Material, error) {
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM materials WHERE salon_id = $1 ORDER BY name, id`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	list := []entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func scanMaterial(row pgx.Row) (*entity.Material, error) {
	var m entity.Material
	if err := row.Scan(&m.ID, &m.SalonID, &m.Name, &m.BatchQuantity, &m.BatchPrice, &m.Unit, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
