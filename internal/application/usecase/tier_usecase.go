package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// TierUseCase tabla de patentes y progreso del salón.
type TierUseCase struct {
	repo     repository.TierRepository
	cashRepo repository.CashFlowRepository
}

// NewTierUseCase construye el caso de uso.
func NewTierUseCase(repo repository.TierRepository, cashRepo repository.CashFlowRepository) *TierUseCase {
	return &TierUseCase{repo: repo, cashRepo: cashRepo}
}

// List tabla ordenada por umbral con los avisos de consistencia.
func (uc *TierUseCase) List(ctx context.Context, salonID string) (*dto.TierTableResponse, error) {
	tiers, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	return toTierTableResponse(tiers), nil
}

// Replace sustituye la tabla completa. Una tabla inconsistente se guarda igual y vuelve con avisos.
func (uc *TierUseCase) Replace(ctx context.Context, salonID string, in dto.TierTableRequest) (*dto.TierTableResponse, error) {
	tiers := make([]entity.Tier, 0, len(in.Tiers))
	for _, t := range in.Tiers {
		id := t.ID
		if id == "" {
			id = uuid.New().String()
		}
		tiers = append(tiers, entity.Tier{
			ID:           id,
			SalonID:      salonID,
			Name:         t.Name,
			MinThreshold: t.MinThreshold,
			Icon:         t.Icon,
		})
	}
	if err := uc.repo.Replace(ctx, salonID, tiers); err != nil {
		return nil, err
	}
	return toTierTableResponse(tiers), nil
}

// Progress patente actual y siguiente según la facturación acumulada de todas las entradas.
func (uc *TierUseCase) Progress(ctx context.Context, salonID string) (*dto.TierProgressDTO, error) {
	type tiersResult struct {
		rows []entity.Tier
		err  error
	}
	type entriesResult struct {
		rows []entity.CashFlowEntry
		err  error
	}
	tiersCh := make(chan tiersResult, 1)
	entriesCh := make(chan entriesResult, 1)
	go func() {
		rows, err := uc.repo.ListBySalon(ctx, salonID)
		tiersCh <- tiersResult{rows, err}
	}()
	go func() {
		rows, err := uc.cashRepo.ListBySalon(ctx, salonID)
		entriesCh <- entriesResult{rows, err}
	}()
	tRes := <-tiersCh
	eRes := <-entriesCh
	if tRes.err != nil {
		return nil, tRes.err
	}
	if eRes.err != nil {
		return nil, eRes.err
	}

	revenue := finance.CumulativeRevenue(eRes.rows)
	tp := finance.ResolveTier(revenue, tRes.rows)
	return &dto.TierProgressDTO{
		CumulativeRevenue: money(revenue),
		Current:           toTierDTO(tp.Current),
		Next:              toTierDTO(tp.Next),
		ProgressPct:       money(tp.ProgressPct),
		RemainingToNext:   money(tp.RemainingToNext),
	}, nil
}

func toTierTableResponse(tiers []entity.Tier) *dto.TierTableResponse {
	sorted := finance.SortTiers(tiers)
	out := &dto.TierTableResponse{Tiers: make([]dto.TierDTO, 0, len(sorted)), Warnings: finance.ValidateTiers(tiers)}
	for i := range sorted {
		out.Tiers = append(out.Tiers, *toTierDTO(&sorted[i]))
	}
	if out.Warnings == nil {
		out.Warnings = []finance.Warning{}
	}
	return out
}

func toTierDTO(t *entity.Tier) *dto.TierDTO {
	if t == nil {
		return nil
	}
	return &dto.TierDTO{ID: t.ID, Name: t.Name, MinThreshold: money(t.MinThreshold), Icon: t.Icon}
}
