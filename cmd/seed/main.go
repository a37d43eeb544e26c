// seed da de alta un salón con su dueño, formas de pago, configuración, meta y patentes
// a partir de un fixture YAML.
//
// Uso: go run ./cmd/seed -fixture cmd/seed/seed.example.yaml [-schema migrations/001_init.sql]
// Con -schema aplica primero el esquema (idempotente: CREATE ... IF NOT EXISTS).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/salon-finance-api/internal/application/auth"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/infrastructure/postgres"
	"github.com/jhoicas/salon-finance-api/pkg/config"
	"github.com/jhoicas/salon-finance-api/pkg/logger"
)

func main() {
	fixturePath := flag.String("fixture", "cmd/seed/seed.example.yaml", "ruta del fixture YAML")
	schemaPath := flag.String("schema", "", "archivo SQL a aplicar antes del seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{App: cfg.App.Name + "-seed", Env: cfg.App.Env, Level: cfg.App.LogLevel})

	data, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatal().Err(err).Str("fixture", *fixturePath).Msg("fixture inválido")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *schemaPath != "" {
		sql, err := os.ReadFile(*schemaPath)
		if err != nil {
			log.Fatal().Err(err).Msg("leer esquema")
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Str("schema", *schemaPath).Msg("esquema aplicado")
	}

	salonRepo := postgres.NewSalonRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	cashRepo := postgres.NewCashFlowRepository(pool)

	salon, err := usecase.NewSalonUseCase(salonRepo).Create(ctx, data.Salon)
	if err != nil {
		log.Fatal().Err(err).Str("document", data.Salon.Document).Msg("crear salón")
	}
	log.Info().Str("salon_id", salon.ID).Str("name", salon.Name).Msg("salón creado")

	if data.Owner.Email != "" {
		data.Owner.SalonID = salon.ID
		// el registro no emite tokens
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), salonRepo, nil)
		if _, err := authUC.RegisterUser(ctx, data.Owner); err != nil {
			log.Fatal().Err(err).Msg("crear dueño")
		}
	}

	pmUC := usecase.NewPaymentMethodUseCase(paymentRepo)
	for _, pm := range data.PaymentMethods {
		if _, err := pmUC.Create(ctx, salon.ID, pm); err != nil {
			log.Fatal().Err(err).Str("payment_method", pm.Name).Msg("crear forma de pago")
		}
	}

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, goalRepo)
	if _, err := settingsUC.Update(ctx, salon.ID, data.Settings); err != nil {
		log.Fatal().Err(err).Msg("guardar configuración")
	}
	if _, err := settingsUC.UpdateGoal(ctx, salon.ID, data.Goal); err != nil {
		log.Fatal().Err(err).Msg("guardar meta")
	}

	if len(data.Tiers.Tiers) > 0 {
		tiers, err := usecase.NewTierUseCase(postgres.NewTierRepository(pool), cashRepo).Replace(ctx, salon.ID, data.Tiers)
		if err != nil {
			log.Fatal().Err(err).Msg("guardar patentes")
		}
		for _, w := range tiers.Warnings {
			log.Warn().Str("code", w.Code).Msg(w.Message)
		}
	}

	log.Info().
		Str("salon_id", salon.ID).
		Int("payment_methods", len(data.PaymentMethods)).
		Int("tiers", len(data.Tiers.Tiers)).
		Msg("seed completado")
}
