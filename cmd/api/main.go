package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/salon-finance-api/internal/application/auth"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
	"github.com/jhoicas/salon-finance-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/salon-finance-api/internal/infrastructure/pdf"
	"github.com/jhoicas/salon-finance-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/salon-finance-api/internal/interfaces/http"
	"github.com/jhoicas/salon-finance-api/pkg/config"
	"github.com/jhoicas/salon-finance-api/pkg/jwt"
	"github.com/jhoicas/salon-finance-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		App:   cfg.App.Name,
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	tokens, err := jwt.NewSigner(cfg.JWT.Secret, cfg.JWT.Issuer, time.Duration(cfg.JWT.Expiration)*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Snapshot de parámetros: Redis si hay REDIS_URL, memoria del proceso si no.
	var snapshots repository.ParamsSnapshotStore
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedis(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		snapshots = cache.NewRedisSnapshotStore(rdb, cfg.Redis.SnapshotTTL)
		log.Info().Dur("ttl", cfg.Redis.SnapshotTTL).Msg("snapshot de parámetros en Redis")
	} else {
		snapshots = cache.NewMemorySnapshotStore()
		log.Warn().Msg("REDIS_URL vacío: snapshot de parámetros en memoria")
	}

	salonRepo := postgres.NewSalonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	paymentRepo := postgres.NewPaymentMethodRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	goalRepo := postgres.NewGoalRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	cashRepo := postgres.NewCashFlowRepository(pool)
	tierRepo := postgres.NewTierRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	paramsUC := usecase.NewParamsUseCase(paymentRepo, settingsRepo, goalRepo, snapshots, log.Component("params"))
	reportUC := usecase.NewReportUseCase(cashRepo, expenseRepo, salonRepo, paramsUC, infrapdf.NewMarotoSummaryGenerator())
	authUC := auth.NewAuthUseCase(userRepo, salonRepo, tokens)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Salon Finance API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		SalonUC:         usecase.NewSalonUseCase(salonRepo),
		PaymentMethodUC: usecase.NewPaymentMethodUseCase(paymentRepo),
		SettingsUC:      usecase.NewSettingsUseCase(settingsRepo, goalRepo),
		ParamsUC:        paramsUC,
		MaterialUC:      usecase.NewMaterialUseCase(materialRepo),
		ServiceUC:       usecase.NewServiceUseCase(serviceRepo, materialRepo, paramsUC),
		CashFlowUC:      usecase.NewCashFlowUseCase(cashRepo),
		TierUC:          usecase.NewTierUseCase(tierRepo, cashRepo),
		ExpenseUC:       usecase.NewExpenseUseCase(expenseRepo),
		ReportUC:        reportUC,
		Tokens:          tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
