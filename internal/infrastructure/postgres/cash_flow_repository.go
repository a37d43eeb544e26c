package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

const cashFlowColumns = `id, salon_id, date, description, type, amount, payment_method, category, commission, created_at`

// CashFlowRepo lançamentos de caja. Solo INSERT y DELETE: la tabla no tiene UPDATE.
type CashFlowRepo struct {
	q Querier
}

// NewCashFlowRepository construye el adaptador.
func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

// Create persiste un lançamento.
func (r *CashFlowRepo) Create(ctx context.Context, e *entity.CashFlowEntry) error {
	var commission decimal.NullDecimal
	if e.Commission != nil {
		commission = decimal.NewNullDecimal(*e.Commission)
	}
	query := `INSERT INTO cash_flow_entries (` + cashFlowColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.SalonID, e.Date, e.Description, e.Type, e.Amount,
		e.PaymentMethod, e.Category, commission, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash flow entry: %w", err)
	}
	return nil
}

// GetByID obtiene un lançamento; (nil, nil) si no existe.
func (r *CashFlowRepo) GetByID(ctx context.Context, id string) (*entity.CashFlowEntry, error) {
	e, err := scanCashFlowEntry(r.q.QueryRow(ctx, `SELECT `+cashFlowColumns+` FROM cash_flow_entries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash flow entry: %w", err)
	}
	return e, nil
}

// Delete borra definitivamente un lançamento.
func (r *CashFlowRepo) Delete(ctx context.Context, salonID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM cash_flow_entries WHERE id = $1 AND salon_id = $2`, id, salonID)
	if err != nil {
		return fmt.Errorf("delete cash flow entry: %w", err)
	}
	return affectedOrNotFound(tag)
}

// ListBySalon libro completo del salón. Se ordena por fecha y alta para que el orden estable
// del saldo acumulado respete el orden de registro en fechas iguales.
func (r *CashFlowRepo) ListBySalon(ctx context.Context, salonID string) ([]entity.CashFlowEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flow_entries WHERE salon_id = $1 ORDER BY date, created_at, id`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list cash flow entries: %w", err)
	}
	defer rows.Close()
	list := []entity.CashFlowEntry{}
	for rows.Next() {
		e, err := scanCashFlowEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash flow entry: %w", err)
		}
		list = append(list, *e)
	}
	return list, rows.Err()
}

func scanCashFlowEntry(row pgx.Row) (*entity.CashFlowEntry, error) {
	var e entity.CashFlowEntry
	var commission decimal.NullDecimal
	err := row.Scan(
		&e.ID, &e.SalonID, &e.Date, &e.Description, &e.Type, &e.Amount,
		&e.PaymentMethod, &e.Category, &commission, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	// DATE llega como medianoche UTC; se fija en UTC por si la columna es timestamptz.
	e.Date = e.Date.UTC()
	if commission.Valid {
		c := commission.Decimal
		e.Commission = &c
	}
	return &e, nil
}
