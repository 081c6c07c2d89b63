// Package pdf gera o relatório gerencial em PDF com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Relatório Gerencial + data de geração               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: cinco contagens agregadas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Empresa | Funcionários                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Credenciado | Faturamento Total                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
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

	"github.com/jhoicas/credenciamento-api/internal/application/analytics"
	"github.com/jhoicas/credenciamento-api/internal/domain/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Garante que MarotoReportGenerator implementa o porto da aplicação.
var _ analytics.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa analytics.ReportPDFGenerator com Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate gera o PDF do relatório gerencial e devolve seus bytes.
func (g *MarotoReportGenerator) Generate(p report.Planilha) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Gerencial", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(resumoRows(p.Resumo)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(sectionTitle("Funcionários por Empresa"))
	m.AddRows(tableHeader("Empresa", "Funcionários"))
	for _, l := range p.Empresas {
		m.AddRows(tableRow(l.Empresa, fmt.Sprintf("%d", l.Funcionarios)))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(sectionTitle("Faturamento por Credenciado"))
	m.AddRows(tableHeader("Credenciado", "Faturamento Total"))
	for _, l := range p.Faturamento {
		m.AddRows(tableRow(l.Credenciado, "R$ "+l.Total.StringFixed(2)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Relatório Gerencial", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

// resumoRows: as cinco contagens agregadas em duas linhas (rótulos e valores).
func resumoRows(r report.Resumo) []core.Row {
	labels := []string{"Empresas Ativas", "Credenciados Ativos", "Funcionários Ativos", "Planos Ativos", "Serviços Totais"}
	values := []int{r.EmpresasAtivas, r.CredenciadosAtivos, r.FuncionariosAtivos, r.PlanosAtivos, r.ServicosTotais}

	labelCols := make([]core.Col, 0, len(labels))
	valueCols := make([]core.Col, 0, len(values))
	for i := range labels {
		labelCols = append(labelCols, col.New(2).Add(
			text.New(labels[i], props.Text{Size: 7, Color: colorGray, Align: align.Center}),
		))
		valueCols = append(valueCols, col.New(2).Add(
			text.New(fmt.Sprintf("%d", values[i]), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary,
			}),
		))
	}
	return []core.Row{
		row.New(6).Add(labelCols...),
		row.New(8).Add(valueCols...),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
		),
	)
}

func tableHeader(left, right string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(left, props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New(right, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)
}

func tableRow(left, right string) core.Row {
	return row.New(5).Add(
		col.New(8).Add(text.New(left, props.Text{Size: 8})),
		col.New(4).Add(text.New(right, props.Text{Size: 8, Align: align.Right})),
	)
}
