package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/report"
)

func criarFuncionarioRequest() dto.CreateFuncionarioRequest {
	return dto.CreateFuncionarioRequest{
		Nome:           "Maria da Silva",
		DataNascimento: "15/03/1990",
		Endereco:       "Rua das Flores, 100",
		CPF:            "52998224725",
		Email:          "maria@example.com",
		Telefone:       "11987654321",
		PessoasNaCasa:  "3",
		EmpresaID:      "emp-1",
	}
}

func TestFuncionarioCreateMascaraDocumentos(t *testing.T) {
	users := newFakeUserRepo()
	uc := NewFuncionarioUseCase(&fakeFuncionarioRepo{}, &fakeEmpresaRepo{}, novoAuthUC(users))

	criado, err := uc.Create(Actor{UserID: "adm", Role: entity.RoleAdmin}, criarFuncionarioRequest())
	require.NoError(t, err)

	assert.Equal(t, "529.982.247-25", criado.CPF)
	assert.Equal(t, "(11) 98765-4321", criado.Telefone)

	user, err := users.GetByID(criado.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entity.RoleEmployee, user.Role)
}

func TestFuncionarioCreateBusinessForcaPropriaEmpresa(t *testing.T) {
	uc := NewFuncionarioUseCase(&fakeFuncionarioRepo{}, &fakeEmpresaRepo{}, novoAuthUC(newFakeUserRepo()))

	req := criarFuncionarioRequest()
	req.EmpresaID = "outra-empresa"
	criado, err := uc.Create(Actor{UserID: "emp-do-ator", Role: entity.RoleBusiness}, req)
	require.NoError(t, err)

	assert.Equal(t, "emp-do-ator", criado.EmpresaID)
}

// CPF é opcional: cadastros sem CPF passam e não colidem entre si na
// verificação de duplicidade.
func TestFuncionarioCreateSemCPF(t *testing.T) {
	repo := &fakeFuncionarioRepo{}
	uc := NewFuncionarioUseCase(repo, &fakeEmpresaRepo{}, novoAuthUC(newFakeUserRepo()))
	actor := Actor{UserID: "adm", Role: entity.RoleAdmin}

	primeiro := criarFuncionarioRequest()
	primeiro.CPF = ""
	criado, err := uc.Create(actor, primeiro)
	require.NoError(t, err)
	assert.Empty(t, criado.CPF)

	segundo := criarFuncionarioRequest()
	segundo.CPF = ""
	segundo.Email = "joao@example.com"
	_, err = uc.Create(actor, segundo)
	require.NoError(t, err)
	assert.Len(t, repo.itens, 2)
}

func TestFuncionarioCreateCPFDuplicado(t *testing.T) {
	uc := NewFuncionarioUseCase(&fakeFuncionarioRepo{}, &fakeEmpresaRepo{}, novoAuthUC(newFakeUserRepo()))
	actor := Actor{UserID: "adm", Role: entity.RoleAdmin}

	_, err := uc.Create(actor, criarFuncionarioRequest())
	require.NoError(t, err)

	segunda := criarFuncionarioRequest()
	segunda.Email = "outra@example.com"
	// Mesmo CPF em outra formatação tem de colidir com o registro já gravado.
	segunda.CPF = "529.982.247-25"
	_, err = uc.Create(actor, segunda)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFuncionarioSoftDelete(t *testing.T) {
	repo := &fakeFuncionarioRepo{}
	uc := NewFuncionarioUseCase(repo, &fakeEmpresaRepo{}, novoAuthUC(newFakeUserRepo()))
	actor := Actor{UserID: "adm", Role: entity.RoleAdmin}

	criado, err := uc.Create(actor, criarFuncionarioRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criado.ID))

	// Apagado some das leituras mas permanece na coleção.
	lido, err := uc.GetByID(criado.ID)
	require.NoError(t, err)
	assert.Nil(t, lido)

	require.Len(t, repo.itens, 1)
	assert.True(t, repo.itens[0].IsDeleted)
	assert.NotNil(t, repo.itens[0].DeletedAt)

	// Apagar de novo é not found.
	assert.ErrorIs(t, uc.Delete(criado.ID), domain.ErrNotFound)
}

func TestFuncionarioListAnexaNomeDaEmpresa(t *testing.T) {
	empresas := &fakeEmpresaRepo{itens: []*entity.Empresa{
		{ID: "emp-1", RazaoSocial: "Acme Comércio Ltda", NomeFantasia: "Acme"},
	}}
	repo := &fakeFuncionarioRepo{itens: []*entity.Funcionario{
		{ID: "f1", Nome: "Maria", EmpresaID: "emp-1"},
		{ID: "f2", Nome: "João", EmpresaID: "emp-sumida"},
	}}
	uc := NewFuncionarioUseCase(repo, empresas, novoAuthUC(newFakeUserRepo()))

	resp, err := uc.List(Actor{UserID: "adm", Role: entity.RoleAdmin}, 20, 0)
	require.NoError(t, err)

	require.Len(t, resp.Items, 2)
	// O vínculo exibido é a razão social, não o nome fantasia.
	assert.Equal(t, "Acme Comércio Ltda", resp.Items[0].NomeEmpresa)
	assert.Equal(t, report.EmpresaDesconhecida, resp.Items[1].NomeEmpresa)
}

func TestFuncionarioListEscopoBusiness(t *testing.T) {
	repo := &fakeFuncionarioRepo{itens: []*entity.Funcionario{
		{ID: "f1", EmpresaID: "emp-1"},
		{ID: "f2", EmpresaID: "emp-2"},
	}}
	uc := NewFuncionarioUseCase(repo, &fakeEmpresaRepo{}, novoAuthUC(newFakeUserRepo()))

	resp, err := uc.List(Actor{UserID: "emp-1", Role: entity.RoleBusiness}, 20, 0)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "f1", resp.Items[0].ID)
}
