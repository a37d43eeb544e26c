package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// PaymentMethodUseCase CRUD de formas de pago.
type PaymentMethodUseCase struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodUseCase construye el caso de uso.
func NewPaymentMethodUseCase(repo repository.PaymentMethodRepository) *PaymentMethodUseCase {
	return &PaymentMethodUseCase{repo: repo}
}

// Create registra una forma de pago. Devuelve domain.ErrDuplicate si el nombre ya existe en el salón.
func (uc *PaymentMethodUseCase) Create(ctx context.Context, salonID string, in dto.PaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	now := time.Now()
	m := &entity.PaymentMethod{
		ID:              uuid.New().String(),
		SalonID:         salonID,
		Name:            in.Name,
		IsActive:        in.IsActive,
		DistributionPct: in.DistributionPct,
		TaxRate:         in.TaxRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// Update reemplaza los campos editables. Devuelve domain.ErrNotFound si no existe en el salón.
func (uc *PaymentMethodUseCase) Update(ctx context.Context, salonID, id string, in dto.PaymentMethodRequest) (*dto.PaymentMethodResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.SalonID != salonID {
		return nil, domain.ErrNotFound
	}
	m.Name = in.Name
	m.IsActive = in.IsActive
	m.DistributionPct = in.DistributionPct
	m.TaxRate = in.TaxRate
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toPaymentMethodResponse(m), nil
}

// Delete elimina una forma de pago del salón.
func (uc *PaymentMethodUseCase) Delete(ctx context.Context, salonID, id string) error {
	return uc.repo.Delete(ctx, salonID, id)
}

// List formas de pago canonicalizadas, con la tasa ponderada y el aviso de distribución.
func (uc *PaymentMethodUseCase) List(ctx context.Context, salonID string) (*dto.PaymentMethodListResponse, error) {
	rows, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	canonical := finance.CanonicalPaymentMethods(rows)
	items := make([]dto.PaymentMethodResponse, 0, len(canonical))
	for i := range canonical {
		items = append(items, *toPaymentMethodResponse(&canonical[i]))
	}
	warnings := finance.ValidateDistribution(canonical)
	if warnings == nil {
		warnings = []finance.Warning{}
	}
	return &dto.PaymentMethodListResponse{
		Items:        items,
		WeightedRate: money(finance.WeightedRate(canonical)),
		Warnings:     warnings,
	}, nil
}

func toPaymentMethodResponse(m *entity.PaymentMethod) *dto.PaymentMethodResponse {
	return &dto.PaymentMethodResponse{
		ID:              m.ID,
		Name:            m.Name,
		IsActive:        m.IsActive,
		DistributionPct: m.DistributionPct,
		TaxRate:         m.TaxRate,
		UpdatedAt:       m.UpdatedAt,
	}
}
