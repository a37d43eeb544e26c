package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

const paymentMethodColumns = `id, salon_id, name, is_active, distribution_percentage, tax_rate, created_at, updated_at`

// PaymentMethodRepo formas de pago sobre PostgreSQL. Los nombres no son únicos en la tabla:
// los duplicados se resuelven al leer (finance.CanonicalPaymentMethods).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// Create persiste una forma de pago.
func (r *PaymentMethodRepo) Create(ctx context.Context, m *entity.PaymentMethod) error {
	query := `INSERT INTO payment_methods (` + paymentMethodColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.SalonID, m.Name, m.IsActive, m.DistributionPct, m.TaxRate, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

// GetByID obtiene una forma de pago; (nil, nil) si no existe.
func (r *PaymentMethodRepo) GetByID(ctx context.Context, id string) (*entity.PaymentMethod, error) {
	row := r.q.QueryRow(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods WHERE id = $1`, id)
	m, err := scanPaymentMethod(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return m, nil
}

// Update actualiza los campos editables.
func (r *PaymentMethodRepo) Update(ctx context.Context, m *entity.PaymentMethod) error {
	query := `
		UPDATE payment_methods
		SET name = $3, is_active = $4, distribution_percentage = $5, tax_rate = $6, updated_at = $7
		WHERE id = $1 AND salon_id = $2`
	tag, err := r.q.Exec(ctx, query, m.ID, m.SalonID, m.Name, m.IsActive, m.DistributionPct, m.TaxRate, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	return affectedOrNotFound(tag)
}

// Delete elimina una forma de pago del salón.
func (r *PaymentMethodRepo) Delete(ctx context.Context, salonID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM payment_methods WHERE id = $1 AND salon_id = $2`, id, salonID)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListBySalon formas de pago en orden de alta (el orden importa para resolver duplicados).
func (r *PaymentMethodRepo) ListBySalon(ctx context.Context, salonID string) ([]entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx, `SELECT `+paymentMethodColumns+` FROM payment_methods WHERE salon_id = $1 ORDER BY created_at, id`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	list := []entity.PaymentMethod{}
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, *m)
	}
	return list, rows.Err()
}

func scanPaymentMethod(row pgx.Row) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := row.Scan(&m.ID, &m.SalonID, &m.Name, &m.IsActive, &m.DistributionPct, &m.TaxRate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
