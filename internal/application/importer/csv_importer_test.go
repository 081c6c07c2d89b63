package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/internal/application/validation"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/pkg/logger"
)

// Fakes em memória, espelhando os da camada de casos de uso.

type memUserRepo struct {
	users map[string]*entity.User
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Update(u *entity.User) error { return nil }
func (r *memUserRepo) Delete(id string) error      { return nil }

type memEmpresaRepo struct {
	itens []*entity.Empresa
}

func (r *memEmpresaRepo) Create(e *entity.Empresa) error { return nil }

func (r *memEmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	for _, e := range r.itens {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) { return nil, nil }
func (r *memEmpresaRepo) Update(e *entity.Empresa) error                 { return nil }

func (r *memEmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	return r.itens, nil
}

func (r *memEmpresaRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Empresa, error) {
	return nil, nil
}

func (r *memEmpresaRepo) Delete(id string) error { return nil }

type memFuncionarioRepo struct {
	itens []*entity.Funcionario
}

func (r *memFuncionarioRepo) Create(f *entity.Funcionario) error {
	r.itens = append(r.itens, f)
	return nil
}

func (r *memFuncionarioRepo) GetByID(id string) (*entity.Funcionario, error) { return nil, nil }

func (r *memFuncionarioRepo) GetByCPF(cpf string) (*entity.Funcionario, error) {
	for _, f := range r.itens {
		if f.CPF == cpf {
			return f, nil
		}
	}
	return nil, nil
}

func (r *memFuncionarioRepo) Update(f *entity.Funcionario) error { return nil }

func (r *memFuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	return r.itens, nil
}

func (r *memFuncionarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Funcionario, error) {
	return nil, nil
}

func (r *memFuncionarioRepo) CountByEmpresa(empresaID string) (int, error) { return 0, nil }
func (r *memFuncionarioRepo) SoftDelete(id string) error                   { return nil }

func montarImportador(empresas []*entity.Empresa) (*CSVImporter, *memFuncionarioRepo) {
	users := &memUserRepo{users: map[string]*entity.User{}}
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: "s", ExpMinutes: 60, Issuer: "t"})
	funcionarios := &memFuncionarioRepo{}
	empresaRepo := &memEmpresaRepo{itens: empresas}
	funcionarioUC := usecase.NewFuncionarioUseCase(funcionarios, empresaRepo, authUC)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewCSVImporter(funcionarioUC, empresaRepo, validation.New(), log), funcionarios
}

const cabecalho = "nome,dataNascimento,endereco,cpf,email,telefone,pessoasNaCasa,empresa\n"

func TestImportResolveEmpresaPorNome(t *testing.T) {
	imp, funcionarios := montarImportador([]*entity.Empresa{
		{ID: "emp-1", NomeFantasia: "Acme"},
	})

	csv := cabecalho +
		"Maria da Silva,15/03/1990,\"Rua das Flores, 100\",529.982.247-25,maria@example.com,11987654321,3,Acme\n"

	result, err := imp.Import(usecase.Actor{UserID: "adm", Role: entity.RoleAdmin}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	assert.Empty(t, result.Falhas)
	require.Len(t, funcionarios.itens, 1)
	assert.Equal(t, "emp-1", funcionarios.itens[0].EmpresaID)
	assert.Equal(t, "529.982.247-25", funcionarios.itens[0].CPF)
}

// A coluna cpf pode vir vazia: a linha é importada sem documento.
func TestImportLinhaSemCPF(t *testing.T) {
	imp, funcionarios := montarImportador(nil)

	csv := cabecalho +
		"Carlos Lima,02/07/1985,\"Av. Central, 45\",,carlos@example.com,11987654321,2,\n"

	result, err := imp.Import(usecase.Actor{UserID: "adm", Role: entity.RoleAdmin}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	assert.Empty(t, result.Falhas)
	require.Len(t, funcionarios.itens, 1)
	assert.Empty(t, funcionarios.itens[0].CPF)
}

func TestImportEmpresaSemCorrespondenciaFicaSemVinculo(t *testing.T) {
	imp, funcionarios := montarImportador(nil)

	csv := cabecalho +
		"Maria da Silva,15/03/1990,\"Rua das Flores, 100\",529.982.247-25,maria@example.com,11987654321,3,Inexistente\n"

	result, err := imp.Import(usecase.Actor{UserID: "adm", Role: entity.RoleAdmin}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	require.Len(t, funcionarios.itens, 1)
	assert.Empty(t, funcionarios.itens[0].EmpresaID)
}

func TestImportLinhaInvalidaNaoAbortaAsDemais(t *testing.T) {
	imp, funcionarios := montarImportador(nil)

	csv := cabecalho +
		"Com CPF Ruim,15/03/1990,\"Rua A, 1\",529.982.247-26,ruim@example.com,11987654321,2,\n" +
		"Maria da Silva,15/03/1990,\"Rua B, 2\",529.982.247-25,maria@example.com,11987654321,3,\n"

	result, err := imp.Import(usecase.Actor{UserID: "adm", Role: entity.RoleAdmin}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	require.Len(t, result.Falhas, 1)
	assert.Equal(t, 2, result.Falhas[0].Linha)
	assert.Equal(t, "Com CPF Ruim", result.Falhas[0].Nome)
	require.Len(t, funcionarios.itens, 1)
	assert.Equal(t, "Maria da Silva", funcionarios.itens[0].Nome)
}

func TestImportEmailDuplicadoReportadoPorNome(t *testing.T) {
	imp, _ := montarImportador(nil)

	csv := cabecalho +
		"Maria da Silva,15/03/1990,\"Rua A, 1\",529.982.247-25,mesma@example.com,11987654321,3,\n" +
		"Outra Pessoa,20/05/1985,\"Rua B, 2\",111.444.777-35,mesma@example.com,1133334444,1,\n"

	result, err := imp.Import(usecase.Actor{UserID: "adm", Role: entity.RoleAdmin}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	require.Len(t, result.Falhas, 1)
	assert.Equal(t, "Outra Pessoa", result.Falhas[0].Nome)
}

func TestImportBusinessForcaPropriaEmpresa(t *testing.T) {
	imp, funcionarios := montarImportador([]*entity.Empresa{
		{ID: "emp-outra", NomeFantasia: "Outra"},
	})

	csv := cabecalho +
		"Maria da Silva,15/03/1990,\"Rua A, 1\",529.982.247-25,maria@example.com,11987654321,3,Outra\n"

	result, err := imp.Import(usecase.Actor{UserID: "emp-do-ator", Role: entity.RoleBusiness}, []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Importados)
	require.Len(t, funcionarios.itens, 1)
	assert.Equal(t, "emp-do-ator", funcionarios.itens[0].EmpresaID)
}

func TestTemplateTrazCabecalhoEsperado(t *testing.T) {
	imp, _ := montarImportador(nil)

	data, err := imp.Template()
	require.NoError(t, err)

	primeira := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t, "nome,dataNascimento,endereco,cpf,email,telefone,pessoasNaCasa,empresa", strings.TrimRight(primeira, "\r"))
}
