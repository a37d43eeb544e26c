package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var (
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
	_ repository.GoalRepository     = (*GoalRepo)(nil)
)

// SettingsRepo configuración del negocio y calendario (business_settings + holidays).
// working_weekdays guarda los time.Weekday trabajados; NULL = calendario aún no cargado.
type SettingsRepo struct {
	db DB
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(db DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get configuración del salón; (nil, nil) si no hay fila.
func (r *SettingsRepo) Get(ctx context.Context, salonID string) (*entity.BusinessSettings, error) {
	query := `
		SELECT salon_id, lucro_desejado, despesas_indiretas, impostos_rate, valor_mobilizado,
		       total_depreciar, team_size, working_weekdays, updated_at
		FROM business_settings WHERE salon_id = $1`
	var s entity.BusinessSettings
	var weekdays []int16
	err := r.db.QueryRow(ctx, query, salonID).Scan(
		&s.SalonID, &s.DesiredProfitPct, &s.IndirectExpensePct, &s.TaxRatePct, &s.MobilizedValue,
		&s.TotalToDepreciate, &s.TeamSize, &weekdays, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if weekdays == nil {
		return &s, nil
	}

	cfg := &entity.WorkingDaysConfig{}
	for _, wd := range weekdays {
		if wd >= 0 && wd < 7 {
			cfg.Weekdays[wd] = true
		}
	}
	holidays, err := r.listHolidays(ctx, salonID)
	if err != nil {
		return nil, err
	}
	cfg.Holidays = holidays
	s.WorkingDays = cfg
	return &s, nil
}

// Save reemplaza configuración y feriados en una sola transacción.
func (r *SettingsRepo) Save(ctx context.Context, s *entity.BusinessSettings) error {
	var weekdays []int16
	if s.WorkingDays != nil {
		weekdays = make([]int16, 0, 7)
		for wd, worked := range s.WorkingDays.Weekdays {
			if worked {
				weekdays = append(weekdays, int16(wd))
			}
		}
	}
	return withTx(ctx, r.db, func(q Querier) error {
		query := `
			INSERT INTO business_settings (salon_id, lucro_desejado, despesas_indiretas, impostos_rate,
				valor_mobilizado, total_depreciar, team_size, working_weekdays, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (salon_id) DO UPDATE SET
				lucro_desejado = EXCLUDED.lucro_desejado,
				despesas_indiretas = EXCLUDED.despesas_indiretas,
				impostos_rate = EXCLUDED.impostos_rate,
				valor_mobilizado = EXCLUDED.valor_mobilizado,
				total_depreciar = EXCLUDED.total_depreciar,
				team_size = EXCLUDED.team_size,
				working_weekdays = EXCLUDED.working_weekdays,
				updated_at = EXCLUDED.updated_at`
		if _, err := q.Exec(ctx, query,
			s.SalonID, s.DesiredProfitPct, s.IndirectExpensePct, s.TaxRatePct,
			s.MobilizedValue, s.TotalToDepreciate, s.TeamSize, weekdays, s.UpdatedAt,
		); err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		if s.WorkingDays == nil {
			return nil
		}
		if _, err := q.Exec(ctx, `DELETE FROM holidays WHERE salon_id = $1`, s.SalonID); err != nil {
			return fmt.Errorf("delete holidays: %w", err)
		}
		for _, h := range s.WorkingDays.Holidays {
			if _, err := q.Exec(ctx,
				`INSERT INTO holidays (id, salon_id, date, name) VALUES ($1, $2, $3, $4)`,
				h.ID, s.SalonID, h.Date, h.Name,
			); err != nil {
				return fmt.Errorf("insert holiday: %w", err)
			}
		}
		return nil
	})
}

func (r *SettingsRepo) listHolidays(ctx context.Context, salonID string) ([]entity.Holiday, error) {
	rows, err := r.db.Query(ctx, `SELECT id, date, name FROM holidays WHERE salon_id = $1 ORDER BY date, id`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()
	list := []entity.Holiday{}
	for rows.Next() {
		var h entity.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name); err != nil {
			return nil, fmt.Errorf("scan holiday: %w", err)
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

// GoalRepo meta del salón (una fila por salón).
type GoalRepo struct {
	q Querier
}

// NewGoalRepository construye el adaptador.
func NewGoalRepository(q Querier) *GoalRepo {
	return &GoalRepo{q: q}
}

// Get meta vigente; (nil, nil) si no hay.
func (r *GoalRepo) Get(ctx context.Context, salonID string) (*entity.Goal, error) {
	var g entity.Goal
	err := r.q.QueryRow(ctx,
		`SELECT salon_id, type, target, updated_at FROM goals WHERE salon_id = $1`, salonID,
	).Scan(&g.SalonID, &g.Type, &g.Target, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// Save inserta o reemplaza la meta.
func (r *GoalRepo) Save(ctx context.Context, g *entity.Goal) error {
	updatedAt := g.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	query := `
		INSERT INTO goals (salon_id, type, target, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (salon_id) DO UPDATE SET type = EXCLUDED.type, target = EXCLUDED.target, updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, g.SalonID, g.Type, g.Target, updatedAt); err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}
