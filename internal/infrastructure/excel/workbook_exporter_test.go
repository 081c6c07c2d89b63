package excel

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/credenciamento-api/internal/domain/report"
)

func TestExportGeraAsTresAbas(t *testing.T) {
	p := report.Planilha{
		Resumo: report.Resumo{
			EmpresasAtivas:     2,
			CredenciadosAtivos: 1,
			FuncionariosAtivos: 5,
			PlanosAtivos:       3,
			ServicosTotais:     7,
		},
		Empresas: []report.LinhaEmpresa{
			{Empresa: "Acme", Funcionarios: 4},
			{Empresa: "Beta", Funcionarios: 1},
		},
		Faturamento: []report.LinhaFaturamento{
			{Credenciado: "Clínica Um", Total: decimal.NewFromFloat(150.50)},
		},
	}

	data, err := NewWorkbookExporter().Export(p)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{report.AbaResumo, report.AbaEmpresas, report.AbaFaturamento}, f.GetSheetList())

	v, err := f.GetCellValue(report.AbaResumo, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Empresas Ativas", v)
	v, err = f.GetCellValue(report.AbaResumo, "E2")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	v, err = f.GetCellValue(report.AbaEmpresas, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Acme", v)
	v, err = f.GetCellValue(report.AbaEmpresas, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	v, err = f.GetCellValue(report.AbaFaturamento, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Clínica Um", v)
	v, err = f.GetCellValue(report.AbaFaturamento, "B2")
	require.NoError(t, err)
	assert.Equal(t, "150.5", v)
}
