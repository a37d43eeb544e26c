package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/auth"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	SalonUC         *usecase.SalonUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	SettingsUC      *usecase.SettingsUseCase
	ParamsUC        *usecase.ParamsUseCase
	MaterialUC      *usecase.MaterialUseCase
	ServiceUC       *usecase.ServiceUseCase
	CashFlowUC      *usecase.CashFlowUseCase
	TierUC          *usecase.TierUseCase
	ExpenseUC       *usecase.ExpenseUseCase
	ReportUC        *usecase.ReportUseCase
	Tokens          TokenVerifier
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth y alta de salón (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	salonHandler := NewSalonHandler(deps.SalonUC)
	api.Post("/salons", salonHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))
	anyRole := RequireRole(entity.RoleOwner, entity.RoleManager, entity.RoleStaff)
	managers := RequireRole(entity.RoleOwner, entity.RoleManager)

	protected.Get("/salons/me", anyRole, salonHandler.Me)

	// Formas de pago
	pm := protected.Group("/payment-methods")
	pmHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	pm.Get("/", anyRole, pmHandler.List)
	pm.Post("/", managers, pmHandler.Create)
	pm.Put("/:id", managers, pmHandler.Update)
	pm.Delete("/:id", managers, pmHandler.Delete)

	// Configuración, calendario y meta
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", anyRole, settingsHandler.Get)
	protected.Put("/settings", managers, settingsHandler.Update)
	protected.Get("/goals", anyRole, settingsHandler.GetGoal)
	protected.Put("/goals", managers, settingsHandler.UpdateGoal)

	// Parámetros derivados
	paramsHandler := NewParamsHandler(deps.ParamsUC)
	protected.Get("/params", anyRole, paramsHandler.Current)

	// Insumos
	materials := protected.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Get("/", anyRole, materialHandler.List)
	materials.Post("/", managers, materialHandler.Create)
	materials.Get("/:id", anyRole, materialHandler.GetByID)
	materials.Put("/:id", managers, materialHandler.Update)
	materials.Delete("/:id", managers, materialHandler.Delete)

	// Servicios (las rutas fijas antes de /:id)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/breakdowns", anyRole, serviceHandler.BreakdownTable)
	services.Post("/reprice", managers, serviceHandler.Reprice)
	services.Get("/", anyRole, serviceHandler.List)
	services.Post("/", managers, serviceHandler.Create)
	services.Get("/:id", anyRole, serviceHandler.GetByID)
	services.Put("/:id", managers, serviceHandler.Update)
	services.Delete("/:id", managers, serviceHandler.Delete)
	services.Get("/:id/breakdown", anyRole, serviceHandler.Breakdown)

	// Flujo de caja
	cash := protected.Group("/cashflow")
	cashHandler := NewCashFlowHandler(deps.CashFlowUC)
	cash.Get("/", anyRole, cashHandler.Statement)
	cash.Post("/", anyRole, cashHandler.Create)
	cash.Put("/:id", anyRole, cashHandler.Update)
	cash.Delete("/:id", managers, cashHandler.Delete)

	// Patentes
	tiers := protected.Group("/tiers")
	tierHandler := NewTierHandler(deps.TierUC)
	tiers.Get("/progress", anyRole, tierHandler.Progress)
	tiers.Get("/", anyRole, tierHandler.List)
	tiers.Put("/", managers, tierHandler.Replace)

	// Despesas
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", managers, expenseHandler.List)
	expenses.Post("/", managers, expenseHandler.Create)
	expenses.Delete("/:id", managers, expenseHandler.Delete)

	// Reportes
	reports := protected.Group("/reports", managers)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary/pdf", reportHandler.SummaryPDF)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/year", reportHandler.Year)
}
