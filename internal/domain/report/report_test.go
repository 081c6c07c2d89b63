package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
)

func empresa(id, nome, accreditingID string, funcionarios int) *entity.Empresa {
	return &entity.Empresa{
		ID:                 id,
		NomeFantasia:       nome,
		AccreditingID:      accreditingID,
		NumeroFuncionarios: funcionarios,
	}
}

func funcionario(id, nome, empresaID string) *entity.Funcionario {
	return &entity.Funcionario{ID: id, Nome: nome, EmpresaID: empresaID}
}

func solicitacao(donoID, status string, preco float64) *entity.Solicitacao {
	return &entity.Solicitacao{
		DonoID: donoID,
		Status: status,
		Preco:  decimal.NewFromFloat(preco),
	}
}

// ─── Escopo por papel ───────────────────────────────────────────────────────

func TestScopeFuncionarios_Business(t *testing.T) {
	funcionarios := []*entity.Funcionario{
		funcionario("f1", "Ana", "emp-1"),
		funcionario("f2", "Bruno", "emp-2"),
		funcionario("f3", "Carla", "emp-1"),
	}

	got := ScopeFuncionarios(funcionarios, nil, entity.RoleBusiness, "emp-1")

	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Nome)
	assert.Equal(t, "Carla", got[1].Nome)
}

func TestScopeFuncionarios_Accrediting(t *testing.T) {
	empresas := []*entity.Empresa{
		empresa("emp-1", "Alfa", "cred-1", 0),
		empresa("emp-2", "Beta", "cred-2", 0),
		empresa("emp-3", "Gama", "cred-1", 0),
	}
	funcionarios := []*entity.Funcionario{
		funcionario("f1", "Ana", "emp-1"),
		funcionario("f2", "Bruno", "emp-2"),
		funcionario("f3", "Carla", "emp-3"),
		funcionario("f4", "Davi", "emp-orfa"),
	}

	got := ScopeFuncionarios(funcionarios, empresas, entity.RoleAccrediting, "cred-1")

	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Nome)
	assert.Equal(t, "Carla", got[1].Nome)
}

func TestScopeFuncionarios_AdminVeTudo(t *testing.T) {
	funcionarios := []*entity.Funcionario{
		funcionario("f1", "Ana", "emp-1"),
		funcionario("f2", "Bruno", "emp-2"),
	}

	got := ScopeFuncionarios(funcionarios, nil, entity.RoleAdmin, "qualquer")

	assert.Len(t, got, 2)
}

func TestComNomeEmpresa_ReferenciaQuebrada(t *testing.T) {
	// O vínculo usa a razão social, não o nome fantasia.
	alfa := empresa("emp-1", "Alfa", "", 0)
	alfa.RazaoSocial = "Alfa Comercio Ltda"
	empresas := []*entity.Empresa{alfa}
	funcionarios := []*entity.Funcionario{
		funcionario("f1", "Ana", "emp-1"),
		funcionario("f2", "Bruno", "emp-sumida"),
	}

	got := ComNomeEmpresa(funcionarios, empresas)

	require.Len(t, got, 2)
	assert.Equal(t, "Alfa Comercio Ltda", got[0].NomeEmpresa)
	assert.Equal(t, EmpresaDesconhecida, got[1].NomeEmpresa)
}

// ─── Rankings ───────────────────────────────────────────────────────────────

func TestTopEmpresasPorFuncionarios_EmpateEstavel(t *testing.T) {
	empresas := []*entity.Empresa{
		empresa("a", "A", "", 10),
		empresa("b", "B", "", 30),
		empresa("c", "C", "", 30),
	}

	got := TopEmpresasPorFuncionarios(empresas, 2)

	require.Len(t, got, 2)
	// B e C empatam em 30; B veio antes na coleção original.
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}

func TestTopEmpresasPorFuncionarios_NaoMutaEntrada(t *testing.T) {
	empresas := []*entity.Empresa{
		empresa("a", "A", "", 1),
		empresa("b", "B", "", 99),
	}

	TopEmpresasPorFuncionarios(empresas, 5)

	assert.Equal(t, "a", empresas[0].ID)
	assert.Equal(t, "b", empresas[1].ID)
}

func TestTopCredenciadosPorFaturamento(t *testing.T) {
	credenciados := []*entity.Credenciado{
		{ID: "p1", NomeFantasia: "Clínica Um"},
		{ID: "p2", NomeFantasia: "Clínica Dois"},
	}
	solicitacoes := []*entity.Solicitacao{
		solicitacao("p1", entity.StatusConfirmada, 100),
		solicitacao("p1", entity.StatusPendente, 50),
		solicitacao("p2", entity.StatusConfirmadoLegado, 80),
	}

	got := TopCredenciadosPorFaturamento(solicitacoes, credenciados, 5)

	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Credenciado.ID)
	assert.True(t, got[0].ValorTotal.Equal(decimal.NewFromInt(100)), "pendente não fatura")
	assert.Equal(t, "p2", got[1].Credenciado.ID)
	assert.True(t, got[1].ValorTotal.Equal(decimal.NewFromInt(80)))
}

func TestTopCredenciadosPorFaturamento_DonoInexistenteDescartado(t *testing.T) {
	credenciados := []*entity.Credenciado{{ID: "p1", NomeFantasia: "Clínica Um"}}
	solicitacoes := []*entity.Solicitacao{
		solicitacao("p1", entity.StatusConfirmada, 10),
		solicitacao("fantasma", entity.StatusConfirmada, 999),
	}

	got := TopCredenciadosPorFaturamento(solicitacoes, credenciados, 5)

	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].Credenciado.ID)
}

func TestTopCredenciadosPorFaturamento_EmpatePreservaOrdemDeChegada(t *testing.T) {
	credenciados := []*entity.Credenciado{
		{ID: "p1", NomeFantasia: "Um"},
		{ID: "p2", NomeFantasia: "Dois"},
	}
	solicitacoes := []*entity.Solicitacao{
		solicitacao("p2", entity.StatusConfirmada, 50),
		solicitacao("p1", entity.StatusConfirmada, 50),
	}

	got := TopCredenciadosPorFaturamento(solicitacoes, credenciados, 5)

	require.Len(t, got, 2)
	// p2 apareceu primeiro nas solicitações.
	assert.Equal(t, "p2", got[0].Credenciado.ID)
	assert.Equal(t, "p1", got[1].Credenciado.ID)
}

// ─── Planilha gerencial ─────────────────────────────────────────────────────

func TestMontarPlanilha(t *testing.T) {
	empresas := []*entity.Empresa{
		empresa("emp-1", "Alfa", "", 3),
		empresa("emp-2", "Beta", "", 0),
	}
	funcionarios := []*entity.Funcionario{
		funcionario("f1", "Ana", "emp-1"),
		funcionario("f2", "Bruno", "emp-1"),
	}
	credenciados := []*entity.Credenciado{
		{ID: "p1", NomeFantasia: "Clínica Um"},
		{ID: "p2", NomeFantasia: "Clínica Dois"},
	}
	planos := []*entity.Plano{{ID: "pl1"}}
	solicitacoes := []*entity.Solicitacao{
		solicitacao("p1", entity.StatusConfirmada, 100),
		solicitacao("p1", entity.StatusPendente, 40),
		{CredenciadoID: "p2", Status: entity.StatusConfirmadoLegado, Preco: decimal.NewFromInt(60)},
	}

	p := MontarPlanilha(empresas, funcionarios, credenciados, planos, solicitacoes)

	assert.Equal(t, 2, p.Resumo.EmpresasAtivas)
	assert.Equal(t, 2, p.Resumo.CredenciadosAtivos)
	assert.Equal(t, 2, p.Resumo.FuncionariosAtivos)
	assert.Equal(t, 1, p.Resumo.PlanosAtivos)
	assert.Equal(t, 3, p.Resumo.ServicosTotais)

	require.Len(t, p.Empresas, 2)
	// Conta por referência real, não pelo campo declarado.
	assert.Equal(t, LinhaEmpresa{Empresa: "Alfa", Funcionarios: 2}, p.Empresas[0])
	assert.Equal(t, LinhaEmpresa{Empresa: "Beta", Funcionarios: 0}, p.Empresas[1])

	require.Len(t, p.Faturamento, 2)
	assert.Equal(t, "Clínica Um", p.Faturamento[0].Credenciado)
	assert.True(t, p.Faturamento[0].Total.Equal(decimal.NewFromInt(100)))
	// Atribuição pelo campo alternativo também fatura.
	assert.Equal(t, "Clínica Dois", p.Faturamento[1].Credenciado)
	assert.True(t, p.Faturamento[1].Total.Equal(decimal.NewFromInt(60)))
}
