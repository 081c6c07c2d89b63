// Package excel serializa a planilha gerencial em XLSX com excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/analytics"
	"github.com/jhoicas/credenciamento-api/internal/domain/report"
)

// Garante que WorkbookExporter implementa o porto da camada de aplicação.
var _ analytics.WorkbookExporter = (*WorkbookExporter)(nil)

// WorkbookExporter gera o arquivo XLSX com as abas Resumo, Empresas e
// Faturamento.
type WorkbookExporter struct{}

// NewWorkbookExporter constrói o exportador.
func NewWorkbookExporter() *WorkbookExporter {
	return &WorkbookExporter{}
}

// Export monta o workbook e devolve os bytes do arquivo.
func (e *WorkbookExporter) Export(p report.Planilha) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := e.abaResumo(f, p.Resumo); err != nil {
		return nil, err
	}
	if err := e.abaEmpresas(f, p.Empresas); err != nil {
		return nil, err
	}
	if err := e.abaFaturamento(f, p.Faturamento); err != nil {
		return nil, err
	}

	// A primeira aba criada pelo excelize se chama Sheet1; com as três abas
	// do relatório no lugar, ela sai do arquivo.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("remover aba padrão: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *WorkbookExporter) abaResumo(f *excelize.File, r report.Resumo) error {
	if _, err := f.NewSheet(report.AbaResumo); err != nil {
		return fmt.Errorf("criar aba %s: %w", report.AbaResumo, err)
	}
	header := []any{"Empresas Ativas", "Credenciados Ativos", "Funcionários Ativos", "Planos Ativos", "Serviços Totais"}
	if err := f.SetSheetRow(report.AbaResumo, "A1", &header); err != nil {
		return err
	}
	row := []any{r.EmpresasAtivas, r.CredenciadosAtivos, r.FuncionariosAtivos, r.PlanosAtivos, r.ServicosTotais}
	return f.SetSheetRow(report.AbaResumo, "A2", &row)
}

func (e *WorkbookExporter) abaEmpresas(f *excelize.File, linhas []report.LinhaEmpresa) error {
	if _, err := f.NewSheet(report.AbaEmpresas); err != nil {
		return fmt.Errorf("criar aba %s: %w", report.AbaEmpresas, err)
	}
	header := []any{"Empresa", "Funcionários"}
	if err := f.SetSheetRow(report.AbaEmpresas, "A1", &header); err != nil {
		return err
	}
	for i, linha := range linhas {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{linha.Empresa, linha.Funcionarios}
		if err := f.SetSheetRow(report.AbaEmpresas, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *WorkbookExporter) abaFaturamento(f *excelize.File, linhas []report.LinhaFaturamento) error {
	if _, err := f.NewSheet(report.AbaFaturamento); err != nil {
		return fmt.Errorf("criar aba %s: %w", report.AbaFaturamento, err)
	}
	header := []any{"Credenciado", "Faturamento Total"}
	if err := f.SetSheetRow(report.AbaFaturamento, "A1", &header); err != nil {
		return err
	}
	for i, linha := range linhas {
		cell := fmt.Sprintf("A%d", i+2)
		total, _ := linha.Total.Float64()
		row := []any{linha.Credenciado, total}
		if err := f.SetSheetRow(report.AbaFaturamento, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
