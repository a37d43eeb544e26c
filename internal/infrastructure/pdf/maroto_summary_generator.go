// Package pdf genera el resumen financiero mensual del salón en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del salón + documento │ Período + emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INDICADORES: Faturamento | Atendimentos | Ticket médio      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Valor | % del faturamento                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESULTADO: Resultado líquido + margen                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 122, Green: 37, Blue: 96}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ usecase.SummaryPDFGenerator = (*MarotoSummaryGenerator)(nil)

// MarotoSummaryGenerator implementa usecase.SummaryPDFGenerator usando Maroto v2.
type MarotoSummaryGenerator struct {
	now func() time.Time
}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator {
	return &MarotoSummaryGenerator{now: time.Now}
}

// GenerateSummaryPDF genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateSummaryPDF(
	_ context.Context,
	salon *entity.Salon,
	summary dto.PeriodSummaryDTO,
) ([]byte, error) {
	if salon == nil {
		return nil, fmt.Errorf("pdf: salón requerido")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumo financeiro "+summary.Label, true).
		WithAuthor(salon.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(salon, summary, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(indicatorsRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range breakdownRows(summary) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(resultRow(summary))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(salon *entity.Salon, summary dto.PeriodSummaryDTO, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(salon.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Documento: "+nonEmpty(salon.Document, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RESUMO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(summary.Label, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+issued.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// indicatorsRow: faturamento, atendimentos y ticket médio.
func indicatorsRow(summary dto.PeriodSummaryDTO) core.Row {
	box := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Center,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Top: 7, Align: align.Center,
			}),
		)
	}
	return row.New(16).Add(
		box("FATURAMENTO BRUTO", formatMoney(summary.GrossRevenue)),
		box("ATENDIMENTOS", fmt.Sprintf("%d", summary.ServiceCount)),
		box("TICKET MÉDIO", formatMoney(summary.AverageTicket)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 6, align.Left),
		h("Valor", 3, align.Right),
		h("% faturamento", 3, align.Right),
	)
}

// breakdownRows: una fila por componente de costo.
func breakdownRows(summary dto.PeriodSummaryDTO) []core.Row {
	lines := []struct {
		label string
		value decimal.Decimal
		pct   decimal.Decimal
	}{
		{"Despesas diretas", summary.DirectCosts, summary.DirectCostsPct},
		{"Despesas indiretas", summary.IndirectCosts, summary.IndirectCostsPct},
		{"Comissões", summary.Commissions, summary.CommissionsPct},
		{"Impostos", summary.Taxes, summary.TaxesPct},
	}
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(l.label, props.Text{Size: 9, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(formatMoney(l.value), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(formatPct(l.pct), props.Text{Size: 9, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// resultRow: resultado líquido en rojo cuando es negativo.
func resultRow(summary dto.PeriodSummaryDTO) core.Row {
	color := colorPrimary
	if summary.NetResult.IsNegative() {
		color = colorNegative
	}
	style := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: color, Top: 2, Right: 1}
	return row.New(12).Add(
		col.New(6).Add(text.New("RESULTADO LÍQUIDO", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: color, Top: 2, Left: 1,
		})),
		col.New(3).Add(text.New(formatMoney(summary.NetResult), style)),
		col.New(3).Add(text.New(formatPct(summary.ProfitMarginPct), style)),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato brasileño con dos decimales.
// Ej: 1234.5 → "R$ 1.234,50", -80 → "-R$ 80,00"
func formatMoney(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	return sign + "R$ " + groupThousands(intPart) + "," + frac
}

// formatPct ej: 12.345 → "12,35%".
func formatPct(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + "%"
}

// groupThousands inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
