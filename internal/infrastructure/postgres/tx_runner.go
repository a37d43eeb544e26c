package postgres

import (
	"context"
	"fmt"
)

// withTx ejecuta fn dentro de una transacción y hace Commit o Rollback.
// Las escrituras de varias tablas (servicio + líneas de material, configuración + feriados,
// tabla de patentes) pasan por aquí.
func withTx(ctx context.Context, db DB, fn func(q Querier) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
