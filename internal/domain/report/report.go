// Package report contém as transformações puras de agregação do painel
// gerencial. Todas as funções operam sobre coleções já materializadas,
// sem I/O, para que o escopo por papel e os rankings sejam testáveis
// de forma determinística.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
)

// EmpresaDesconhecida é o nome exibido quando o empresaId de um funcionário
// não resolve para nenhuma empresa carregada.
const EmpresaDesconhecida = "Empresa desconhecida"

// FuncionarioComEmpresa funcionário enriquecido com o nome da empresa.
type FuncionarioComEmpresa struct {
	entity.Funcionario
	NomeEmpresa string
}

// CredenciadoFaturamento credenciado enriquecido com o total faturado em
// solicitações confirmadas.
type CredenciadoFaturamento struct {
	Credenciado *entity.Credenciado
	ValorTotal  decimal.Decimal
}

// ScopeFuncionarios aplica o escopo de visão do papel sobre a coleção de
// funcionários: business vê apenas os da própria empresa (userID é o id da
// empresa), accrediting vê os funcionários das empresas da sua rede, e os
// demais papéis veem tudo.
func ScopeFuncionarios(funcionarios []*entity.Funcionario, empresas []*entity.Empresa, role, userID string) []*entity.Funcionario {
	switch role {
	case entity.RoleBusiness:
		out := make([]*entity.Funcionario, 0, len(funcionarios))
		for _, f := range funcionarios {
			if f.EmpresaID == userID {
				out = append(out, f)
			}
		}
		return out
	case entity.RoleAccrediting:
		rede := make(map[string]bool, len(empresas))
		for _, e := range empresas {
			if e.AccreditingID == userID {
				rede[e.ID] = true
			}
		}
		out := make([]*entity.Funcionario, 0, len(funcionarios))
		for _, f := range funcionarios {
			if rede[f.EmpresaID] {
				out = append(out, f)
			}
		}
		return out
	default:
		return funcionarios
	}
}

// ComNomeEmpresa anexa a cada funcionário a razão social da sua empresa,
// ou EmpresaDesconhecida quando a referência não resolve.
func ComNomeEmpresa(funcionarios []*entity.Funcionario, empresas []*entity.Empresa) []FuncionarioComEmpresa {
	nomes := make(map[string]string, len(empresas))
	for _, e := range empresas {
		nomes[e.ID] = e.RazaoSocial
	}
	out := make([]FuncionarioComEmpresa, 0, len(funcionarios))
	for _, f := range funcionarios {
		nome, ok := nomes[f.EmpresaID]
		if !ok {
			nome = EmpresaDesconhecida
		}
		out = append(out, FuncionarioComEmpresa{Funcionario: *f, NomeEmpresa: nome})
	}
	return out
}

// TopEmpresasPorFuncionarios devolve as n empresas com mais funcionários,
// em ordem decrescente. Empates preservam a ordem original da coleção.
func TopEmpresasPorFuncionarios(empresas []*entity.Empresa, n int) []*entity.Empresa {
	ordenadas := make([]*entity.Empresa, len(empresas))
	copy(ordenadas, empresas)
	sort.SliceStable(ordenadas, func(i, j int) bool {
		return ordenadas[i].NumeroFuncionarios > ordenadas[j].NumeroFuncionarios
	})
	if n < len(ordenadas) {
		ordenadas = ordenadas[:n]
	}
	return ordenadas
}

// TopCredenciadosPorFaturamento agrupa as solicitações confirmadas por
// credenciado dono, soma os preços e devolve os n maiores totais. Grupos
// cujo dono não existe na coleção de credenciados são descartados. Empates
// preservam a ordem em que cada grupo apareceu nas solicitações.
func TopCredenciadosPorFaturamento(solicitacoes []*entity.Solicitacao, credenciados []*entity.Credenciado, n int) []CredenciadoFaturamento {
	totais := make(map[string]decimal.Decimal)
	var ordem []string
	for _, s := range solicitacoes {
		if !s.Confirmada() {
			continue
		}
		if _, ok := totais[s.DonoID]; !ok {
			ordem = append(ordem, s.DonoID)
		}
		totais[s.DonoID] = totais[s.DonoID].Add(s.Preco)
	}

	porID := make(map[string]*entity.Credenciado, len(credenciados))
	for _, c := range credenciados {
		porID[c.ID] = c
	}

	out := make([]CredenciadoFaturamento, 0, len(ordem))
	for _, id := range ordem {
		c, ok := porID[id]
		if !ok {
			continue
		}
		out = append(out, CredenciadoFaturamento{Credenciado: c, ValorTotal: totais[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValorTotal.GreaterThan(out[j].ValorTotal)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
