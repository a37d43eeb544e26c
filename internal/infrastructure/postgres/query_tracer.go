package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const maxLoggedSQL = 200

type queryStartKey struct{}

type queryStart struct {
	sql string
	at  time.Time
}

// queryTracer pgx.QueryTracer que registra consultas lentas (Warn) y fallidas (Debug).
// Los argumentos nunca se registran: llevan emails y hashes de password.
type queryTracer struct {
	log  zerolog.Logger
	slow time.Duration
	now  func() time.Time
}

var _ pgx.QueryTracer = (*queryTracer)(nil)

func newQueryTracer(log zerolog.Logger, slow time.Duration) *queryTracer {
	return &queryTracer{log: log.With().Str("component", "postgres").Logger(), slow: slow, now: time.Now}
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{sql: data.SQL, at: t.now()})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(start.at)
	switch {
	case data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows):
		t.log.Debug().Err(data.Err).
			Str("sql", compactSQL(start.sql)).
			Dur("elapsed", elapsed).
			Msg("consulta con error")
	case elapsed >= t.slow:
		t.log.Warn().
			Str("sql", compactSQL(start.sql)).
			Dur("elapsed", elapsed).
			Int64("rows", data.CommandTag.RowsAffected()).
			Msg("consulta lenta")
	}
}

// compactSQL una línea, espacios colapsados y cortada a maxLoggedSQL runas.
func compactSQL(sql string) string {
	s := strings.Join(strings.Fields(sql), " ")
	if r := []rune(s); len(r) > maxLoggedSQL {
		return string(r[:maxLoggedSQL]) + "…"
	}
	return s
}
