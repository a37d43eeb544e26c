package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// Segmentos de BusinessParams que pueden caer al snapshot anterior.
const (
	SegmentPayments = "payment_methods"
	SegmentSettings = "settings"
	SegmentGoal     = "goal"
)

// ParamsUseCase arma el snapshot de BusinessParams de un salón.
//
// Las tres fuentes (formas de pago, configuración, meta) se cargan en paralelo. Si una falla,
// el segmento se toma del último snapshot guardado (o de los valores por defecto) y el error
// solo se registra: Current nunca falla por una fuente caída.
type ParamsUseCase struct {
	paymentRepo  repository.PaymentMethodRepository
	settingsRepo repository.SettingsRepository
	goalRepo     repository.GoalRepository
	snapshots    repository.ParamsSnapshotStore
	log          zerolog.Logger
}

// NewParamsUseCase construye el caso de uso.
func NewParamsUseCase(
	paymentRepo repository.PaymentMethodRepository,
	settingsRepo repository.SettingsRepository,
	goalRepo repository.GoalRepository,
	snapshots repository.ParamsSnapshotStore,
	log zerolog.Logger,
) *ParamsUseCase {
	return &ParamsUseCase{
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		goalRepo:     goalRepo,
		snapshots:    snapshots,
		log:          log,
	}
}

// ParamsResult snapshot exacto (sin redondear) más los avisos y segmentos caídos.
type ParamsResult struct {
	Params   finance.BusinessParams
	Warnings []finance.Warning
	Fallback []string
}

// Load agrega las fuentes y guarda el snapshot resultante. Lo usan los demás casos de uso que
// necesitan los parámetros vigentes.
func (uc *ParamsUseCase) Load(ctx context.Context, salonID string) ParamsResult {
	type methodsResult struct {
		rows []entity.PaymentMethod
		err  error
	}
	type settingsResult struct {
		row *entity.BusinessSettings
		err error
	}
	type goalResult struct {
		row *entity.Goal
		err error
	}
	type previousResult struct {
		row *finance.BusinessParams
		err error
	}

	methodsCh := make(chan methodsResult, 1)
	settingsCh := make(chan settingsResult, 1)
	goalCh := make(chan goalResult, 1)
	prevCh := make(chan previousResult, 1)

	go func() {
		rows, err := uc.paymentRepo.ListBySalon(ctx, salonID)
		methodsCh <- methodsResult{rows, err}
	}()
	go func() {
		row, err := uc.settingsRepo.Get(ctx, salonID)
		settingsCh <- settingsResult{row, err}
	}()
	go func() {
		row, err := uc.goalRepo.Get(ctx, salonID)
		goalCh <- goalResult{row, err}
	}()
	go func() {
		row, err := uc.snapshots.Get(ctx, salonID)
		prevCh <- previousResult{row, err}
	}()

	mRes := <-methodsCh
	sRes := <-settingsCh
	gRes := <-goalCh
	pRes := <-prevCh

	var src finance.Sources
	var fallback []string

	if mRes.err != nil {
		uc.log.Warn().Err(mRes.err).Str("salon_id", salonID).Str("segment", SegmentPayments).Msg("fuente no disponible, se usa el snapshot anterior")
		fallback = append(fallback, SegmentPayments)
	} else {
		src.PaymentMethods = mRes.rows
		src.PaymentMethodsLoaded = true
	}
	if sRes.err != nil {
		uc.log.Warn().Err(sRes.err).Str("salon_id", salonID).Str("segment", SegmentSettings).Msg("fuente no disponible, se usa el snapshot anterior")
		fallback = append(fallback, SegmentSettings)
	} else {
		src.Settings = sRes.row
	}
	if gRes.err != nil {
		uc.log.Warn().Err(gRes.err).Str("salon_id", salonID).Str("segment", SegmentGoal).Msg("fuente no disponible, se usa el snapshot anterior")
		fallback = append(fallback, SegmentGoal)
	} else {
		src.Goal = gRes.row
	}

	previous := pRes.row
	if pRes.err != nil {
		uc.log.Warn().Err(pRes.err).Str("salon_id", salonID).Msg("snapshot anterior no disponible")
		previous = nil
	}

	params := finance.Aggregate(src, previous)

	// Solo se guarda lo que vino de fuentes reales; un snapshot construido enteramente con
	// valores de reserva no reemplaza al anterior.
	if len(fallback) < 3 {
		if err := uc.snapshots.Set(ctx, salonID, params); err != nil {
			uc.log.Warn().Err(err).Str("salon_id", salonID).Msg("guardar snapshot de parámetros")
		}
	}

	return ParamsResult{Params: params, Warnings: finance.ValidateParams(params), Fallback: fallback}
}

// Current snapshot vigente para exponer por HTTP (montos redondeados).
func (uc *ParamsUseCase) Current(ctx context.Context, salonID string) (*dto.BusinessParamsDTO, error) {
	if salonID == "" {
		return nil, fmt.Errorf("params: salonID obligatorio")
	}
	res := uc.Load(ctx, salonID)
	return toBusinessParamsDTO(res), nil
}

func toBusinessParamsDTO(res ParamsResult) *dto.BusinessParamsDTO {
	p := res.Params
	warnings := res.Warnings
	if warnings == nil {
		warnings = []finance.Warning{}
	}
	return &dto.BusinessParamsDTO{
		DesiredProfitPct:       money(p.DesiredProfitPct),
		IndirectExpensePct:     money(p.IndirectExpensePct),
		DirectExpensePct:       money(p.DirectExpensePct),
		TaxRatePct:             money(p.TaxRatePct),
		WeightedPaymentRatePct: money(p.WeightedPaymentRatePct),
		WorkingDaysPerYear:     p.WorkingDaysPerYear,
		MobilizedValue:         money(p.MobilizedValue),
		TotalToDepreciate:      money(p.TotalToDepreciate),
		MonthlyDepreciation:    money(p.MonthlyDepreciation),
		TeamSize:               p.TeamSize,
		GoalType:               p.GoalType,
		GoalTarget:             money(p.GoalTarget),
		Warnings:               warnings,
		FallbackSegments:       res.Fallback,
	}
}
