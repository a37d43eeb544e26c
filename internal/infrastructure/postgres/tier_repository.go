package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.TierRepository = (*TierRepo)(nil)

// TierRepo tabla de patentes por salón.
type TierRepo struct {
	db DB
}

// NewTierRepository construye el adaptador.
func NewTierRepository(db DB) *TierRepo {
	return &TierRepo{db: db}
}

// ListBySalon patentes ordenadas por umbral.
func (r *TierRepo) ListBySalon(ctx context.Context, salonID string) ([]entity.Tier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, salon_id, name, min_revenue_threshold, icon
		FROM tiers WHERE salon_id = $1 ORDER BY min_revenue_threshold, position`, salonID)
	if err != nil {
		return nil, fmt.Errorf("list tiers: %w", err)
	}
	defer rows.Close()
	list := []entity.Tier{}
	for rows.Next() {
		var t entity.Tier
		if err := rows.Scan(&t.ID, &t.SalonID, &t.Name, &t.MinThreshold, &t.Icon); err != nil {
			return nil, fmt.Errorf("scan tier: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Replace borra la tabla del salón e inserta la nueva en una transacción.
func (r *TierRepo) Replace(ctx context.Context, salonID string, tiers []entity.Tier) error {
	return withTx(ctx, r.db, func(q Querier) error {
		if _, err := q.Exec(ctx, `DELETE FROM tiers WHERE salon_id = $1`, salonID); err != nil {
			return fmt.Errorf("delete tiers: %w", err)
		}
		for i, t := range tiers {
			if _, err := q.Exec(ctx,
				`INSERT INTO tiers (id, salon_id, name, min_revenue_threshold, icon, position) VALUES ($1, $2, $3, $4, $5, $6)`,
				t.ID, salonID, t.Name, t.MinThreshold, t.Icon, i,
			); err != nil {
				return fmt.Errorf("insert tier: %w", err)
			}
		}
		return nil
	})
}
