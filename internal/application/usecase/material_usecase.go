package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// MaterialUseCase CRUD de insumos. El costo unitario nunca se recibe: se deriva del lote.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create registra un insumo.
func (uc *MaterialUseCase) Create(ctx context.Context, salonID string, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	if !in.BatchQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.Material{
		ID:            uuid.New().String(),
		SalonID:       salonID,
		Name:          in.Name,
		BatchQuantity: in.BatchQuantity,
		BatchPrice:    in.BatchPrice,
		Unit:          in.Unit,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// GetByID obtiene un insumo del salón; nil si no existe.
func (uc *MaterialUseCase) GetByID(ctx context.Context, salonID, id string) (*dto.MaterialResponse, error) {
	m, err := uc.get(ctx, salonID, id)
	if err != nil || m == nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Update modifica el lote. Los servicios que ya usan el insumo conservan el costo congelado.
func (uc *MaterialUseCase) Update(ctx context.Context, salonID, id string, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	if !in.BatchQuantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.get(ctx, salonID, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	m.Name = in.Name
	m.BatchQuantity = in.BatchQuantity
	m.BatchPrice = in.BatchPrice
	m.Unit = in.Unit
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMaterialResponse(m), nil
}

// Delete elimina un insumo.
func (uc *MaterialUseCase) Delete(ctx context.Context, salonID, id string) error {
	return uc.repo.Delete(ctx, salonID, id)
}

// List insumos del salón.
func (uc *MaterialUseCase) List(ctx context.Context, salonID string) ([]dto.MaterialResponse, error) {
	rows, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toMaterialResponse(&rows[i]))
	}
	return out, nil
}

func (uc *MaterialUseCase) get(ctx context.Context, salonID, id string) (*entity.Material, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil || m.SalonID != salonID {
		return nil, nil
	}
	return m, nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:            m.ID,
		Name:          m.Name,
		BatchQuantity: m.BatchQuantity,
		BatchPrice:    m.BatchPrice,
		Unit:          m.Unit,
		UnitCost:      m.UnitCost().Round(4),
		UpdatedAt:     m.UpdatedAt,
	}
}
