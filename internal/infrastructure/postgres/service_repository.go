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

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

const serviceColumns = `id, salon_id, name, sale_price, commission_rate, total_cost, gross_profit, profit_margin, created_at, updated_at`

// ServiceRepo servicios y sus líneas de material (services + service_materials).
type ServiceRepo struct {
	db DB
}

// NewServiceRepository construye el adaptador.
func NewServiceRepository(db DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

// Create persiste el servicio y sus líneas en una transacción.
func (r *ServiceRepo) Create(ctx context.Context, s *entity.Service) error {
	return withTx(ctx, r.db, func(q Querier) error {
		query := `INSERT INTO services (` + serviceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		if _, err := q.Exec(ctx, query,
			s.ID, s.SalonID, s.Name, s.SalePrice, s.CommissionRate,
			s.TotalCost, s.GrossProfit, s.ProfitMarginPct, s.CreatedAt, s.UpdatedAt,
		); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert service: %w", err)
		}
		return insertServiceMaterials(ctx, q, s)
	})
}

// GetByID servicio con sus líneas; (nil, nil) si no existe.
func (r *ServiceRepo) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	s, err := scanService(r.db.QueryRow(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	lines, err := r.materialLines(ctx, `WHERE sm.service_id = $1`, id)
	if err != nil {
		return nil, err
	}
	s.Materials = lines[s.ID]
	if s.Materials == nil {
		s.Materials = []entity.MaterialCost{}
	}
	return s, nil
}

// Update reemplaza el servicio y todas sus líneas.
func (r *ServiceRepo) Update(ctx context.Context, s *entity.Service) error {
	return withTx(ctx, r.db, func(q Querier) error {
		query := `
			UPDATE services SET name = $3, sale_price = $4, commission_rate = $5, total_cost = $6,
				gross_profit = $7, profit_margin = $8, updated_at = $9
			WHERE id = $1 AND salon_id = $2`
		tag, err := q.Exec(ctx, query,
			s.ID, s.SalonID, s.Name, s.SalePrice, s.CommissionRate,
			s.TotalCost, s.GrossProfit, s.ProfitMarginPct, s.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update service: %w", err)
		}
		if err := affectedOrNotFound(tag); err != nil {
			return err
		}
		if _, err := q.Exec(ctx, `DELETE FROM service_materials WHERE service_id = $1`, s.ID); err != nil {
			return fmt.Errorf("delete service materials: %w", err)
		}
		return insertServiceMaterials(ctx, q, s)
	})
}

// Delete elimina el servicio; las líneas caen por ON DELETE CASCADE.
func (r *ServiceRepo) Delete(ctx context.Context, salonID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1 AND salon_id = $2`, id, salonID)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListBySalon servicios del salón con sus líneas, ordenados por nombre.
func (r *ServiceRepo) ListBySalon(ctx context.Context, salonID string) ([]entity.Service, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceColumns+` FROM services WHERE salon_id = $1 ORDER BY name, id`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	list := []entity.Service{}
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, *s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	lines, err := r.materialLines(ctx, `JOIN services s ON s.id = sm.service_id WHERE s.salon_id = $1`, salonID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Materials = lines[list[i].ID]
		if list[i].Materials == nil {
			list[i].Materials = []entity.MaterialCost{}
		}
	}
	return list, nil
}

// materialLines líneas agrupadas por servicio, en el orden en que se asignaron.
func (r *ServiceRepo) materialLines(ctx context.Context, where string, arg any) (map[string][]entity.MaterialCost, error) {
	query := `
		SELECT sm.service_id, sm.material_id, sm.quantity, sm.cost
		FROM service_materials sm ` + where + `
		ORDER BY sm.service_id, sm.position`
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list service materials: %w", err)
	}
	defer rows.Close()
	out := map[string][]entity.MaterialCost{}
	for rows.Next() {
		var serviceID string
		var l entity.MaterialCost
		if err := rows.Scan(&serviceID, &l.MaterialID, &l.Quantity, &l.Cost); err != nil {
			return nil, fmt.Errorf("scan service material: %w", err)
		}
		out[serviceID] = append(out[serviceID], l)
	}
	return out, rows.Err()
}

func insertServiceMaterials(ctx context.Context, q Querier, s *entity.Service) error {
	for i, l := range s.Materials {
		if _, err := q.Exec(ctx,
			`INSERT INTO service_materials (service_id, position, material_id, quantity, cost) VALUES ($1, $2, $3, $4, $5)`,
			s.ID, i, l.MaterialID, l.Quantity, l.Cost,
		); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("material %s: %w", l.MaterialID, domain.ErrInvalidInput)
			}
			return fmt.Errorf("insert service material: %w", err)
		}
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	err := row.Scan(
		&s.ID, &s.SalonID, &s.Name, &s.SalePrice, &s.CommissionRate,
		&s.TotalCost, &s.GrossProfit, &s.ProfitMarginPct, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
