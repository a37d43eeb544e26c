package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// ServiceUseCase catálogo de servicios y su cascada de costos.
//
// Al guardar, cada línea de material congela su costo (costo unitario * cantidad en ese momento)
// y TotalCost, GrossProfit y ProfitMarginPct se calculan con los parámetros vigentes.
type ServiceUseCase struct {
	repo         repository.ServiceRepository
	materialRepo repository.MaterialRepository
	params       *ParamsUseCase
}

// NewServiceUseCase construye el caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository, materialRepo repository.MaterialRepository, params *ParamsUseCase) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, materialRepo: materialRepo, params: params}
}

// Create registra un servicio con sus líneas de material.
func (uc *ServiceUseCase) Create(ctx context.Context, salonID string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	lines, err := uc.freezeMaterials(ctx, salonID, in.Materials)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	svc := entity.Service{
		ID:             uuid.New().String(),
		SalonID:        salonID,
		Name:           in.Name,
		SalePrice:      in.SalePrice,
		CommissionRate: in.CommissionRate,
		Materials:      lines,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	svc = finance.Price(svc, uc.params.Load(ctx, salonID).Params)
	if err := uc.repo.Create(ctx, &svc); err != nil {
		return nil, err
	}
	return toServiceResponse(&svc), nil
}

// GetByID obtiene un servicio del salón; nil si no existe.
func (uc *ServiceUseCase) GetByID(ctx context.Context, salonID, id string) (*dto.ServiceResponse, error) {
	svc, err := uc.get(ctx, salonID, id)
	if err != nil || svc == nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Update reemplaza nombre, precio, comisión y líneas de material; vuelve a congelar los costos.
func (uc *ServiceUseCase) Update(ctx context.Context, salonID, id string, in dto.ServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := uc.get(ctx, salonID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.freezeMaterials(ctx, salonID, in.Materials)
	if err != nil {
		return nil, err
	}
	svc.Name = in.Name
	svc.SalePrice = in.SalePrice
	svc.CommissionRate = in.CommissionRate
	svc.Materials = lines
	svc.UpdatedAt = time.Now()
	priced := finance.Price(*svc, uc.params.Load(ctx, salonID).Params)
	if err := uc.repo.Update(ctx, &priced); err != nil {
		return nil, err
	}
	return toServiceResponse(&priced), nil
}

// Delete elimina un servicio.
func (uc *ServiceUseCase) Delete(ctx context.Context, salonID, id string) error {
	return uc.repo.Delete(ctx, salonID, id)
}

// List servicios del salón con los costos guardados.
func (uc *ServiceUseCase) List(ctx context.Context, salonID string) ([]dto.ServiceResponse, error) {
	rows, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toServiceResponse(&rows[i]))
	}
	return out, nil
}

// Breakdown cascada de costos de un servicio con los parámetros vigentes.
func (uc *ServiceUseCase) Breakdown(ctx context.Context, salonID, id string) (*dto.ServiceBreakdownDTO, error) {
	svc, err := uc.get(ctx, salonID, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	p := uc.params.Load(ctx, salonID).Params
	return toBreakdownDTO(svc, finance.Breakdown(*svc, p)), nil
}

// BreakdownTable cascada de todos los servicios (tabla de precificación).
func (uc *ServiceUseCase) BreakdownTable(ctx context.Context, salonID string) ([]dto.ServiceBreakdownDTO, error) {
	rows, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	p := uc.params.Load(ctx, salonID).Params
	out := make([]dto.ServiceBreakdownDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *toBreakdownDTO(&rows[i], finance.Breakdown(rows[i], p)))
	}
	return out, nil
}

// Reprice recalcula y guarda los costos de todos los servicios con los parámetros vigentes.
// Los costos de material congelados no cambian. Devuelve cuántos servicios cambiaron.
func (uc *ServiceUseCase) Reprice(ctx context.Context, salonID string) (*dto.RepriceResponse, error) {
	rows, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	p := uc.params.Load(ctx, salonID).Params
	updated := 0
	for _, svc := range rows {
		priced := finance.Price(svc, p)
		if priced.TotalCost.Equal(svc.TotalCost) {
			continue
		}
		priced.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, &priced); err != nil {
			return nil, fmt.Errorf("reprice %s: %w", svc.ID, err)
		}
		updated++
	}
	return &dto.RepriceResponse{Updated: updated}, nil
}

func (uc *ServiceUseCase) freezeMaterials(ctx context.Context, salonID string, in []dto.MaterialUsageRequest) ([]entity.MaterialCost, error) {
	lines := make([]entity.MaterialCost, 0, len(in))
	for _, u := range in {
		if !u.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		m, err := uc.materialRepo.GetByID(ctx, u.MaterialID)
		if err != nil {
			return nil, err
		}
		if m == nil || m.SalonID != salonID {
			return nil, fmt.Errorf("material %s: %w", u.MaterialID, domain.ErrInvalidInput)
		}
		lines = append(lines, entity.MaterialCost{
			MaterialID: m.ID,
			Quantity:   u.Quantity,
			Cost:       finance.MaterialLineCost(*m, u.Quantity),
		})
	}
	return lines, nil
}

func (uc *ServiceUseCase) get(ctx context.Context, salonID, id string) (*entity.Service, error) {
	svc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil || svc.SalonID != salonID {
		return nil, nil
	}
	return svc, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	materials := make([]dto.MaterialCostDTO, 0, len(s.Materials))
	for _, m := range s.Materials {
		materials = append(materials, dto.MaterialCostDTO{
			MaterialID: m.MaterialID,
			Quantity:   m.Quantity,
			Cost:       money(m.Cost),
		})
	}
	return &dto.ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		SalePrice:       money(s.SalePrice),
		CommissionRate:  s.CommissionRate,
		Materials:       materials,
		TotalCost:       money(s.TotalCost),
		GrossProfit:     money(s.GrossProfit),
		ProfitMarginPct: money(s.ProfitMarginPct),
		UpdatedAt:       s.UpdatedAt,
	}
}

func toBreakdownDTO(s *entity.Service, b finance.ServiceBreakdown) *dto.ServiceBreakdownDTO {
	return &dto.ServiceBreakdownDTO{
		ServiceID:            s.ID,
		ServiceName:          s.Name,
		SalePrice:            money(b.SalePrice),
		CommissionCost:       money(b.CommissionCost),
		MaterialCost:         money(b.MaterialCost),
		CardCost:             money(b.CardCost),
		TaxCost:              money(b.TaxCost),
		TotalDirectCost:      money(b.TotalDirectCost),
		DirectCostPct:        money(b.DirectCostPct),
		OperationalMargin:    money(b.OperationalMargin),
		OperationalMarginPct: money(b.OperationalMarginPct),
		OperationalCost:      money(b.OperationalCost),
		PartialProfit:        money(b.PartialProfit),
		PartialProfitPct:     money(b.PartialProfitPct),
		Stale:                b.Stale,
	}
}
