package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// SalonUseCase alta y consulta de salones (tenants).
type SalonUseCase struct {
	repo repository.SalonRepository
}

// NewSalonUseCase construye el caso de uso con el puerto de persistencia.
func NewSalonUseCase(repo repository.SalonRepository) *SalonUseCase {
	return &SalonUseCase{repo: repo}
}

// Create da de alta un salón activo. El repositorio devuelve domain.ErrDuplicate si el documento ya existe.
func (uc *SalonUseCase) Create(ctx context.Context, in dto.CreateSalonRequest) (*dto.SalonResponse, error) {
	now := time.Now()
	salon := &entity.Salon{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Phone:     in.Phone,
		Email:     in.Email,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, salon); err != nil {
		return nil, err
	}
	return toSalonResponse(salon), nil
}

// GetByID obtiene un salón por ID; nil si no existe.
func (uc *SalonUseCase) GetByID(ctx context.Context, id string) (*dto.SalonResponse, error) {
	salon, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if salon == nil {
		return nil, nil
	}
	return toSalonResponse(salon), nil
}

func toSalonResponse(s *entity.Salon) *dto.SalonResponse {
	return &dto.SalonResponse{
		ID:        s.ID,
		Name:      s.Name,
		Document:  s.Document,
		Phone:     s.Phone,
		Email:     s.Email,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
