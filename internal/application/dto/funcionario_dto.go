package dto

import "time"

// CreateFuncionarioRequest entrada para cadastrar um funcionário. O CPF é
// opcional; quando presente, precisa passar no checksum.
type CreateFuncionarioRequest struct {
	Nome           string `json:"nome" validate:"required,min=2"`
	DataNascimento string `json:"data_nascimento" validate:"required,datanasc"`
	Endereco       string `json:"endereco" validate:"required,min=5"`
	CPF            string `json:"cpf" validate:"omitempty,cpf"`
	Email          string `json:"email" validate:"required,email"`
	Telefone       string `json:"telefone" validate:"required,telefone"`
	PessoasNaCasa  string `json:"pessoas_na_casa" validate:"omitempty,numeric"`
	EmpresaID      string `json:"empresa_id" validate:"omitempty"`
}

// UpdateFuncionarioRequest entrada para atualizar um funcionário.
type UpdateFuncionarioRequest struct {
	Nome           string `json:"nome" validate:"required,min=2"`
	DataNascimento string `json:"data_nascimento" validate:"required,datanasc"`
	Endereco       string `json:"endereco" validate:"required,min=5"`
	CPF            string `json:"cpf" validate:"omitempty,cpf"`
	Telefone       string `json:"telefone" validate:"required,telefone"`
	PessoasNaCasa  string `json:"pessoas_na_casa" validate:"omitempty,numeric"`
	EmpresaID      string `json:"empresa_id" validate:"omitempty"`
}

// FuncionarioResponse saída de um funcionário.
type FuncionarioResponse struct {
	ID             string    `json:"id"`
	Nome           string    `json:"nome"`
	DataNascimento string    `json:"data_nascimento"`
	Endereco       string    `json:"endereco"`
	CPF            string    `json:"cpf"`
	Email          string    `json:"email"`
	Telefone       string    `json:"telefone"`
	PessoasNaCasa  string    `json:"pessoas_na_casa,omitempty"`
	EmpresaID      string    `json:"empresa_id,omitempty"`
	NomeEmpresa    string    `json:"nome_empresa,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// FuncionarioListResponse lista paginada de funcionários.
type FuncionarioListResponse struct {
	Items []FuncionarioResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// ImportRowError falha de uma linha do import CSV, identificada pelo nome.
type ImportRowError struct {
	Linha int    `json:"linha"`
	Nome  string `json:"nome"`
	Erro  string `json:"erro"`
}

// ImportResult resultado agregado do import CSV de funcionários.
type ImportResult struct {
	Importados int              `json:"importados"`
	Falhas     []ImportRowError `json:"falhas"`
}
