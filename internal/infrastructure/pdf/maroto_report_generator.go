// Package pdf implementa a geração do relatório de fechamento de custos de um
// período.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Período                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: totais por categoria + custo total do período       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: SKU | Descrição | Qtd | Custo Total | Unit. | Margem│
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: custo unitário médio + margem média                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 21, Green: 94, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GeneratePeriodReportPDF gera o PDF do fechamento e devolve seus bytes.
func (g *MarotoReportGenerator) GeneratePeriodReportPDF(_ context.Context, report *dto.PeriodReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fechamento de Custos "+report.Period, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(report *dto.PeriodReportResponse) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("FECHAMENTO DE CUSTOS DE PRODUÇÃO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d registro(s) confirmado(s)/fechado(s)", report.RecordCount), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(report.Period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRows: totais por categoria em duas colunas de rótulo/valor.
func summaryRows(report *dto.PeriodReportResponse) []core.Row {
	pair := func(label, value string) core.Row {
		return row.New(5).Add(
			col.New(5).Add(text.New(label, props.Text{Size: 8.5, Top: 0.5})),
			col.New(3).Add(text.New("R$ "+value, props.Text{Size: 8.5, Align: align.Right, Top: 0.5})),
			col.New(4),
		)
	}
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("RESUMO DO PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1.5,
			}),
		)),
		pair("Material direto", report.TotalDirectMaterial.StringFixed(2)),
		pair("Mão de obra", report.TotalLabor.StringFixed(2)),
		pair("Custos indiretos", report.TotalIndirect.StringFixed(2)),
		pair("Frete", report.TotalFreight.StringFixed(2)),
		pair("Impostos", report.TotalTax.StringFixed(2)),
		pair("Desperdício", report.TotalWastage.StringFixed(2)),
		row.New(7).Add(
			col.New(5).Add(text.New("CUSTO TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			})),
			col.New(3).Add(text.New("R$ "+report.TotalCost.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			})),
			col.New(4),
		),
	}
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Descrição", 4, align.Left),
		h("Qtd.", 1, align.Right),
		h("Custo Total", 2, align.Right),
		h("Unit.", 1, align.Right),
		h("Margem %", 2, align.Right),
	)
}

func tableRows(rows []dto.PeriodReportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(r.SKUCode, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New(r.SKUDescription, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(r.QuantityProduced.StringFixed(0), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.TotalCost.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(1).Add(text.New(r.UnitCost.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.GrossMarginPercent.StringFixed(1)+"%", props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}

func footerRow(report *dto.PeriodReportResponse) core.Row {
	return row.New(10).Add(
		col.New(6).Add(text.New(
			"Custo unitário médio: R$ "+report.AvgUnitCost.StringFixed(2),
			props.Text{Size: 8.5, Top: 2, Color: colorGray},
		)),
		col.New(6).Add(text.New(
			"Margem bruta média: "+report.AvgMarginPercent.StringFixed(1)+"%",
			props.Text{Size: 8.5, Align: align.Right, Top: 2, Color: colorGray},
		)),
	)
}
