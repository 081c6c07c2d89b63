// Package importer implementa o import em massa de funcionários via CSV.
package importer

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
	"github.com/jhoicas/credenciamento-api/pkg/logger"
)

// linhaCSV contrato de colunas do arquivo de import. O cabeçalho precisa
// bater exatamente com estes nomes.
type linhaCSV struct {
	Nome           string `csv:"nome"`
	DataNascimento string `csv:"dataNascimento"`
	Endereco       string `csv:"endereco"`
	CPF            string `csv:"cpf"`
	Email          string `csv:"email"`
	Telefone       string `csv:"telefone"`
	PessoasNaCasa  string `csv:"pessoasNaCasa"`
	Empresa        string `csv:"empresa"`
}

// Validator valida o DTO de cada linha antes do cadastro.
type Validator interface {
	Struct(s interface{}) error
}

// CSVImporter processa o arquivo linha a linha, estritamente em sequência:
// cada linha provisiona a identidade e grava o documento antes da próxima
// começar. Linhas que falham são registradas pelo nome e não abortam as
// seguintes; não há rollback das linhas já gravadas.
type CSVImporter struct {
	funcionarioUC *usecase.FuncionarioUseCase
	empresaRepo   repository.EmpresaRepository
	validate      Validator
	log           *logger.Logger
}

// NewCSVImporter constrói o importador.
func NewCSVImporter(funcionarioUC *usecase.FuncionarioUseCase, empresaRepo repository.EmpresaRepository, validate Validator, log *logger.Logger) *CSVImporter {
	return &CSVImporter{funcionarioUC: funcionarioUC, empresaRepo: empresaRepo, validate: validate, log: log}
}

// Import processa o conteúdo CSV no escopo do ator. A coluna empresa traz o
// nome fantasia, resolvido para id por igualdade exata contra as empresas
// cadastradas; sem correspondência o funcionário fica sem vínculo. Atores
// com papel business importam sempre para a própria empresa.
func (imp *CSVImporter) Import(actor usecase.Actor, data []byte) (*dto.ImportResult, error) {
	var linhas []linhaCSV
	if err := gocsv.UnmarshalBytes(data, &linhas); err != nil {
		return nil, fmt.Errorf("import: csv inválido: %w", err)
	}

	empresas, err := imp.empresaRepo.List(0, 0)
	if err != nil {
		return nil, fmt.Errorf("import: carregar empresas: %w", err)
	}
	porNome := make(map[string]string, len(empresas))
	for _, e := range empresas {
		porNome[e.NomeFantasia] = e.ID
	}

	result := &dto.ImportResult{}
	for i, linha := range linhas {
		numero := i + 2 // linha 1 é o cabeçalho

		empresaID := porNome[linha.Empresa]
		if actor.Role == entity.RoleBusiness {
			empresaID = actor.UserID
		}
		req := dto.CreateFuncionarioRequest{
			Nome:           linha.Nome,
			DataNascimento: linha.DataNascimento,
			Endereco:       linha.Endereco,
			CPF:            linha.CPF,
			Email:          linha.Email,
			Telefone:       linha.Telefone,
			PessoasNaCasa:  linha.PessoasNaCasa,
			EmpresaID:      empresaID,
		}

		if err := imp.validate.Struct(req); err != nil {
			imp.falha(result, numero, linha.Nome, err)
			continue
		}
		if _, err := imp.funcionarioUC.Create(actor, req); err != nil {
			imp.falha(result, numero, linha.Nome, err)
			continue
		}
		result.Importados++
	}
	return result, nil
}

// Template devolve o arquivo modelo com o cabeçalho esperado.
func (imp *CSVImporter) Template() ([]byte, error) {
	exemplo := []linhaCSV{{
		Nome:           "Maria da Silva",
		DataNascimento: "15/03/1990",
		Endereco:       "Rua das Flores, 100",
		CPF:            "529.982.247-25",
		Email:          "maria.silva@example.com",
		Telefone:       "(11) 98765-4321",
		PessoasNaCasa:  "3",
		Empresa:        "Empresa Exemplo",
	}}
	return gocsv.MarshalBytes(&exemplo)
}

func (imp *CSVImporter) falha(result *dto.ImportResult, numero int, nome string, err error) {
	imp.log.Warn().Int("linha", numero).Str("nome", nome).Err(err).Msg("linha do import falhou")
	result.Falhas = append(result.Falhas, dto.ImportRowError{
		Linha: numero,
		Nome:  nome,
		Erro:  err.Error(),
	})
}
