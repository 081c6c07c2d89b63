package dto

import "time"

// CreateEmpresaRequest entrada para cadastrar uma empresa conveniada.
// O documento fiscal aceita CNPJ ou CAEPF, já mascarado ou em dígitos crus.
type CreateEmpresaRequest struct {
	RazaoSocial        string     `json:"razao_social" validate:"required,min=2"`
	NomeFantasia       string     `json:"nome_fantasia" validate:"required,min=2"`
	EmailAcesso        string     `json:"email_acesso" validate:"required,email"`
	CNPJCAEPF          string     `json:"cnpj_caepf" validate:"required,cnpjcaepf"`
	Endereco           string     `json:"endereco" validate:"required,min=5"`
	CEP                string     `json:"cep" validate:"required,cep"`
	NumeroFuncionarios int        `json:"numero_funcionarios" validate:"required,gt=0"`
	ContatoRH          ContatoDTO `json:"contato_rh" validate:"required"`
	ContatoFinanceiro  ContatoDTO `json:"contato_financeiro" validate:"required"`
	PlanoID            string     `json:"plano_id" validate:"required"`
}

// UpdateEmpresaRequest entrada para atualizar uma empresa (documento completo).
type UpdateEmpresaRequest struct {
	RazaoSocial        string     `json:"razao_social" validate:"required,min=2"`
	NomeFantasia       string     `json:"nome_fantasia" validate:"required,min=2"`
	CNPJCAEPF          string     `json:"cnpj_caepf" validate:"required,cnpjcaepf"`
	Endereco           string     `json:"endereco" validate:"required,min=5"`
	CEP                string     `json:"cep" validate:"required,cep"`
	NumeroFuncionarios int        `json:"numero_funcionarios" validate:"required,gt=0"`
	ContatoRH          ContatoDTO `json:"contato_rh" validate:"required"`
	ContatoFinanceiro  ContatoDTO `json:"contato_financeiro" validate:"required"`
	PlanoID            string     `json:"plano_id" validate:"required"`
}

// EmpresaResponse saída de uma empresa.
type EmpresaResponse struct {
	ID                 string     `json:"id"`
	RazaoSocial        string     `json:"razao_social"`
	NomeFantasia       string     `json:"nome_fantasia"`
	EmailAcesso        string     `json:"email_acesso"`
	CNPJCAEPF          string     `json:"cnpj_caepf"`
	Endereco           string     `json:"endereco"`
	CEP                string     `json:"cep"`
	NumeroFuncionarios int        `json:"numero_funcionarios"`
	ContatoRH          ContatoDTO `json:"contato_rh"`
	ContatoFinanceiro  ContatoDTO `json:"contato_financeiro"`
	AccreditingID      string     `json:"accrediting_id,omitempty"`
	AccreditingName    string     `json:"accrediting_name,omitempty"`
	PlanoID            string     `json:"plano_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// EmpresaListResponse lista paginada de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
