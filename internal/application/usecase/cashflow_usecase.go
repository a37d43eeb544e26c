package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

// CashFlowUseCase libro de caja: alta, baja y extracto con saldo acumulado.
type CashFlowUseCase struct {
	repo repository.CashFlowRepository
}

// NewCashFlowUseCase construye el caso de uso.
func NewCashFlowUseCase(repo repository.CashFlowRepository) *CashFlowUseCase {
	return &CashFlowUseCase{repo: repo}
}

// Create registra un lançamento. Una vez creado no se modifica.
func (uc *CashFlowUseCase) Create(ctx context.Context, salonID string, in dto.CashFlowEntryRequest) (*dto.CashFlowLineDTO, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	e := &entity.CashFlowEntry{
		ID:          uuid.New().String(),
		SalonID:     salonID,
		Date:        date,
		Description: in.Description,
		Type:        in.Type,
		Amount:      in.Amount,
		Commission:  in.Commission,
		CreatedAt:   time.Now(),
	}
	switch in.Type {
	case entity.EntryTypeIn:
		if in.PaymentMethod == "" {
			return nil, domain.ErrInvalidInput
		}
		e.PaymentMethod = in.PaymentMethod
	case entity.EntryTypeOut:
		if in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		e.Category = in.Category
		e.Commission = nil
	default:
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return uc.lineOf(ctx, *e)
}

// lineOf saldo acumulado del lançamento dentro del libro completo.
func (uc *CashFlowUseCase) lineOf(ctx context.Context, e entity.CashFlowEntry) (*dto.CashFlowLineDTO, error) {
	entries, err := uc.repo.ListBySalon(ctx, e.SalonID)
	if err != nil {
		return nil, err
	}
	for _, l := range finance.WithRunningBalance(entries) {
		if l.Entry.ID == e.ID {
			line := toCashFlowLineDTO(l)
			return &line, nil
		}
	}
	line := toCashFlowLineDTO(finance.LedgerLine{Entry: e, RunningBalance: decimal.Zero})
	return &line, nil
}

// Delete elimina definitivamente un lançamento. Los saldos posteriores se recalculan solos.
func (uc *CashFlowUseCase) Delete(ctx context.Context, salonID, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil || e.SalonID != salonID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, salonID, id)
}

// Statement extracto ordenado por fecha. El saldo se acumula siempre sobre el libro completo y
// después se recorta la ventana [from, to], así el primer saldo incluye lo anterior a from.
// from y to vacíos no recortan.
func (uc *CashFlowUseCase) Statement(ctx context.Context, salonID string, q dto.CashFlowQuery) (*dto.CashFlowStatementDTO, error) {
	var from, to time.Time
	var err error
	if q.From != "" {
		if from, err = parseDate(q.From); err != nil {
			return nil, err
		}
	}
	if q.To != "" {
		if to, err = parseDate(q.To); err != nil {
			return nil, err
		}
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	entries, err := uc.repo.ListBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	lines := finance.WithRunningBalance(entries)

	opening := decimal.Zero
	window := make([]finance.LedgerLine, 0, len(lines))
	for _, l := range lines {
		if !from.IsZero() && l.Entry.Date.Before(from) {
			opening = l.RunningBalance
			continue
		}
		if !to.IsZero() && l.Entry.Date.After(to) {
			break
		}
		window = append(window, l)
	}

	totals := finance.Totals(window)
	closing := opening
	if len(window) > 0 {
		closing = window[len(window)-1].RunningBalance
	}

	items := make([]dto.CashFlowLineDTO, 0, len(window))
	for _, l := range window {
		items = append(items, toCashFlowLineDTO(l))
	}
	return &dto.CashFlowStatementDTO{
		Items:          items,
		OpeningBalance: money(opening),
		TotalIn:        money(totals.TotalIn),
		TotalOut:       money(totals.TotalOut),
		ClosingBalance: money(closing),
	}, nil
}

func toCashFlowLineDTO(l finance.LedgerLine) dto.CashFlowLineDTO {
	e := l.Entry
	var commission *decimal.Decimal
	if e.Commission != nil {
		c := money(*e.Commission)
		commission = &c
	}
	return dto.CashFlowLineDTO{
		ID:             e.ID,
		Date:           e.Date,
		Description:    e.Description,
		Type:           e.Type,
		Amount:         money(e.Amount),
		PaymentMethod:  e.PaymentMethod,
		Category:       e.Category,
		Commission:     commission,
		RunningBalance: money(l.RunningBalance),
	}
}
