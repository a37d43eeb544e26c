package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// SummaryPDFGenerator puerto de salida: renderiza el resumen mensual en PDF.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, salon *entity.Salon, summary dto.PeriodSummaryDTO) ([]byte, error)
}

// ReportUseCase resúmenes financieros por mes y por año.
type ReportUseCase struct {
	cashRepo    repository.CashFlowRepository
	expenseRepo repository.ExpenseRepository
	salonRepo   repository.SalonRepository
	params      *ParamsUseCase
	generator   SummaryPDFGenerator
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	cashRepo repository.CashFlowRepository,
	expenseRepo repository.ExpenseRepository,
	salonRepo repository.SalonRepository,
	params *ParamsUseCase,
	generator SummaryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		cashRepo:    cashRepo,
		expenseRepo: expenseRepo,
		salonRepo:   salonRepo,
		params:      params,
		generator:   generator,
		now:         time.Now,
	}
}

// reportInputs datos crudos de un año para los resúmenes.
type reportInputs struct {
	entries  []entity.CashFlowEntry
	direct   []entity.Expense
	indirect []entity.Expense
	params   finance.BusinessParams
}

// MonthlySummary resumen de un mes. Mes o año en cero toman el mes en curso.
func (uc *ReportUseCase) MonthlySummary(ctx context.Context, salonID string, req dto.PeriodRequest) (*dto.PeriodSummaryDTO, error) {
	month, year := currentPeriod(req.Month, req.Year, uc.now())
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	in, err := uc.load(ctx, salonID, year)
	if err != nil {
		return nil, err
	}
	s := finance.Summarize(in.entries, in.direct, in.indirect, finance.Period{Month: month, Year: year}, in.params)
	out := toPeriodSummaryDTO(s)
	return &out, nil
}

// YearSummary los doce meses del año más el acumulado.
func (uc *ReportUseCase) YearSummary(ctx context.Context, salonID string, year int) (*dto.YearSummaryDTO, error) {
	_, year = currentPeriod(1, year, uc.now())
	in, err := uc.load(ctx, salonID, year)
	if err != nil {
		return nil, err
	}
	months := finance.YearSummaries(in.entries, in.direct, in.indirect, year, in.params)
	out := &dto.YearSummaryDTO{Year: year, Months: make([]dto.PeriodSummaryDTO, 0, len(months))}
	for _, m := range months {
		out.Months = append(out.Months, toPeriodSummaryDTO(m))
	}
	out.Total = toPeriodSummaryDTO(finance.Combine(months))
	out.Total.Label = fmt.Sprintf("Total %d", year)
	return out, nil
}

// MonthlySummaryPDF resumen mensual en PDF. Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ReportUseCase) MonthlySummaryPDF(ctx context.Context, salonID string, req dto.PeriodRequest) ([]byte, string, error) {
	summary, err := uc.MonthlySummary(ctx, salonID, req)
	if err != nil {
		return nil, "", err
	}
	salon, err := uc.salonRepo.GetByID(ctx, salonID)
	if err != nil {
		return nil, "", fmt.Errorf("report: obtener salón: %w", err)
	}
	if salon == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateSummaryPDF(ctx, salon, *summary)
	if err != nil {
		return nil, "", fmt.Errorf("report: generar pdf: %w", err)
	}
	filename := fmt.Sprintf("resumen-%04d-%02d.pdf", summary.Year, summary.Month)
	return pdf, filename, nil
}

func (uc *ReportUseCase) load(ctx context.Context, salonID string, year int) (*reportInputs, error) {
	type entriesResult struct {
		rows []entity.CashFlowEntry
		err  error
	}
	type expensesResult struct {
		rows []entity.Expense
		err  error
	}
	entriesCh := make(chan entriesResult, 1)
	directCh := make(chan expensesResult, 1)
	indirectCh := make(chan expensesResult, 1)
	paramsCh := make(chan ParamsResult, 1)

	go func() {
		rows, err := uc.cashRepo.ListBySalon(ctx, salonID)
		entriesCh <- entriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.expenseRepo.ListByKind(ctx, salonID, entity.ExpenseDirect, year)
		directCh <- expensesResult{rows, err}
	}()
	go func() {
		rows, err := uc.expenseRepo.ListByKind(ctx, salonID, entity.ExpenseIndirect, year)
		indirectCh <- expensesResult{rows, err}
	}()
	go func() {
		paramsCh <- uc.params.Load(ctx, salonID)
	}()

	eRes := <-entriesCh
	dRes := <-directCh
	iRes := <-indirectCh
	pRes := <-paramsCh

	if eRes.err != nil {
		return nil, fmt.Errorf("report: caja: %w", eRes.err)
	}
	if dRes.err != nil {
		return nil, fmt.Errorf("report: despesas directas: %w", dRes.err)
	}
	if iRes.err != nil {
		return nil, fmt.Errorf("report: despesas indirectas: %w", iRes.err)
	}
	return &reportInputs{
		entries:  eRes.rows,
		direct:   dRes.rows,
		indirect: iRes.rows,
		params:   pRes.Params,
	}, nil
}

func toPeriodSummaryDTO(s finance.PeriodFinancialSummary) dto.PeriodSummaryDTO {
	label := ""
	if s.Period.Month >= 1 && s.Period.Month <= 12 {
		label = fmt.Sprintf("%s %d", monthNames[s.Period.Month-1], s.Period.Year)
	}
	return dto.PeriodSummaryDTO{
		Month:            s.Period.Month,
		Year:             s.Period.Year,
		Label:            label,
		GrossRevenue:     money(s.GrossRevenue),
		DirectCosts:      money(s.DirectCosts),
		IndirectCosts:    money(s.IndirectCosts),
		Commissions:      money(s.Commissions),
		Taxes:            money(s.Taxes),
		ServiceCount:     s.ServiceCount,
		AverageTicket:    money(s.AverageTicket),
		NetResult:        money(s.NetResult),
		ProfitMarginPct:  money(s.ProfitMarginPct),
		DirectCostsPct:   money(s.DirectCostsPct),
		IndirectCostsPct: money(s.IndirectCostsPct),
		CommissionsPct:   money(s.CommissionsPct),
		TaxesPct:         money(s.TaxesPct),
	}
}
