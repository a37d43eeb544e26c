package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// SettingsUseCase configuración del negocio (márgenes, impuestos, depreciación, calendario) y meta.
type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	goalRepo     repository.GoalRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(settingsRepo repository.SettingsRepository, goalRepo repository.GoalRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo, goalRepo: goalRepo}
}

// Get configuración guardada; si el salón aún no configuró nada devuelve los valores por defecto.
func (uc *SettingsUseCase) Get(ctx context.Context, salonID string) (*dto.SettingsResponse, error) {
	s, err := uc.settingsRepo.Get(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = defaultSettings(salonID)
	}
	return toSettingsResponse(s), nil
}

// Update reemplaza la configuración completa, incluyendo calendario y feriados.
func (uc *SettingsUseCase) Update(ctx context.Context, salonID string, in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	holidays := make([]entity.Holiday, 0, len(in.Holidays))
	for _, h := range in.Holidays {
		date, err := parseDate(h.Date)
		if err != nil {
			return nil, err
		}
		id := h.ID
		if id == "" {
			id = uuid.New().String()
		}
		holidays = append(holidays, entity.Holiday{ID: id, Date: date, Name: h.Name})
	}
	s := &entity.BusinessSettings{
		SalonID:            salonID,
		DesiredProfitPct:   in.DesiredProfitPct,
		IndirectExpensePct: in.IndirectExpensePct,
		TaxRatePct:         in.TaxRatePct,
		MobilizedValue:     in.MobilizedValue,
		TotalToDepreciate:  in.TotalToDepreciate,
		TeamSize:           in.TeamSize,
		WorkingDays:        &entity.WorkingDaysConfig{Weekdays: in.Weekdays, Holidays: holidays},
		UpdatedAt:          time.Now(),
	}
	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// GetGoal meta vigente; sin meta devuelve la de facturación con objetivo cero.
func (uc *SettingsUseCase) GetGoal(ctx context.Context, salonID string) (*dto.GoalResponse, error) {
	g, err := uc.goalRepo.Get(ctx, salonID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		g = &entity.Goal{SalonID: salonID, Type: entity.GoalTypeRevenue, Target: decimal.Zero}
	}
	return &dto.GoalResponse{Type: g.Type, Target: g.Target, UpdatedAt: g.UpdatedAt}, nil
}

// UpdateGoal guarda la meta del salón.
func (uc *SettingsUseCase) UpdateGoal(ctx context.Context, salonID string, in dto.GoalRequest) (*dto.GoalResponse, error) {
	g := &entity.Goal{SalonID: salonID, Type: in.Type, Target: in.Target, UpdatedAt: time.Now()}
	if err := uc.goalRepo.Save(ctx, g); err != nil {
		return nil, err
	}
	return &dto.GoalResponse{Type: g.Type, Target: g.Target, UpdatedAt: g.UpdatedAt}, nil
}

func defaultSettings(salonID string) *entity.BusinessSettings {
	p := finance.DefaultBusinessParams()
	wd := p.WorkingDays
	return &entity.BusinessSettings{
		SalonID:            salonID,
		DesiredProfitPct:   p.DesiredProfitPct,
		IndirectExpensePct: p.IndirectExpensePct,
		TaxRatePct:         p.TaxRatePct,
		MobilizedValue:     p.MobilizedValue,
		TotalToDepreciate:  p.TotalToDepreciate,
		TeamSize:           p.TeamSize,
		WorkingDays:        &wd,
	}
}

func toSettingsResponse(s *entity.BusinessSettings) *dto.SettingsResponse {
	out := &dto.SettingsResponse{
		DesiredProfitPct:   s.DesiredProfitPct,
		IndirectExpensePct: s.IndirectExpensePct,
		TaxRatePct:         s.TaxRatePct,
		MobilizedValue:     s.MobilizedValue,
		TotalToDepreciate:  s.TotalToDepreciate,
		TeamSize:           s.TeamSize,
		Holidays:           []dto.HolidayDTO{},
		UpdatedAt:          s.UpdatedAt,
	}
	wd := entity.DefaultWorkingDays()
	if s.WorkingDays != nil {
		wd = *s.WorkingDays
	}
	out.Weekdays = wd.Weekdays
	for _, h := range wd.Holidays {
		out.Holidays = append(out.Holidays, dto.HolidayDTO{ID: h.ID, Date: h.Date.Format(dateLayout), Name: h.Name})
	}
	return out
}
