package entity

import "time"

// Funcionario representa um funcionário vinculado (ou não) a uma empresa.
//
// Funcionários nunca são removidos fisicamente: a exclusão é lógica, via
// IsDeleted + DeletedAt, e o registro permanece na base.
type Funcionario struct {
	ID             string
	Nome           string
	DataNascimento string // DD/MM/AAAA, como digitado no painel
	Endereco       string
	CPF            string // opcional, forma mascarada canônica
	Email          string
	Telefone       string
	PessoasNaCasa  string // opcional, texto numérico
	EmpresaID      string // referência fraca; vazio = sem empresa
	IsDeleted      bool
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
