package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
)

// Nomes das abas do relatório gerencial exportado.
const (
	AbaResumo      = "Resumo"
	AbaEmpresas    = "Empresas"
	AbaFaturamento = "Faturamento"
)

// Resumo linha única de contagens agregadas do painel.
type Resumo struct {
	EmpresasAtivas     int
	CredenciadosAtivos int
	FuncionariosAtivos int
	PlanosAtivos       int
	ServicosTotais     int
}

// LinhaEmpresa uma linha da aba Empresas: empresa e quantos funcionários
// referenciam o seu id.
type LinhaEmpresa struct {
	Empresa      string
	Funcionarios int
}

// LinhaFaturamento uma linha da aba Faturamento: credenciado e total das
// solicitações confirmadas atribuídas a ele, seja como dono ou pelo campo
// alternativo de atribuição.
type LinhaFaturamento struct {
	Credenciado string
	Total       decimal.Decimal
}

// Planilha é a forma tabular do relatório gerencial, pronta para ser
// serializada em XLSX ou PDF.
type Planilha struct {
	Resumo      Resumo
	Empresas    []LinhaEmpresa
	Faturamento []LinhaFaturamento
}

// MontarPlanilha monta as três abas do relatório a partir das coleções já
// carregadas. A aba Empresas conta funcionários por referência real de
// empresaId (não pelo campo declarado numeroFuncionarios). A aba Faturamento
// lista todos os credenciados, inclusive os sem faturamento (total zero).
func MontarPlanilha(
	empresas []*entity.Empresa,
	funcionarios []*entity.Funcionario,
	credenciados []*entity.Credenciado,
	planos []*entity.Plano,
	solicitacoes []*entity.Solicitacao,
) Planilha {
	p := Planilha{
		Resumo: Resumo{
			EmpresasAtivas:     len(empresas),
			CredenciadosAtivos: len(credenciados),
			FuncionariosAtivos: len(funcionarios),
			PlanosAtivos:       len(planos),
			ServicosTotais:     len(solicitacoes),
		},
	}

	porEmpresa := make(map[string]int, len(empresas))
	for _, f := range funcionarios {
		porEmpresa[f.EmpresaID]++
	}
	p.Empresas = make([]LinhaEmpresa, 0, len(empresas))
	for _, e := range empresas {
		p.Empresas = append(p.Empresas, LinhaEmpresa{
			Empresa:      e.NomeFantasia,
			Funcionarios: porEmpresa[e.ID],
		})
	}

	confirmadas := make([]*entity.Solicitacao, 0, len(solicitacoes))
	for _, s := range solicitacoes {
		if s.Confirmada() {
			confirmadas = append(confirmadas, s)
		}
	}
	p.Faturamento = make([]LinhaFaturamento, 0, len(credenciados))
	for _, c := range credenciados {
		total := decimal.Zero
		for _, s := range confirmadas {
			if s.DonoID == c.ID || s.CredenciadoID == c.ID {
				total = total.Add(s.Preco)
			}
		}
		p.Faturamento = append(p.Faturamento, LinhaFaturamento{
			Credenciado: c.NomeFantasia,
			Total:       total,
		})
	}
	return p
}
