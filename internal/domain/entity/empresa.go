package entity

import "time"

// Empresa representa uma empresa cliente da rede de benefícios.
// O ID coincide com o UID do login provisionado para o email de acesso.
type Empresa struct {
	ID                 string
	RazaoSocial        string
	NomeFantasia       string
	EmailAcesso        string
	CNPJCAEPF          string // documento fiscal na forma mascarada canônica
	Endereco           string
	CEP                string
	NumeroFuncionarios int
	ContatoRH          Contato
	ContatoFinanceiro  Contato
	AccreditingID      string // credenciadora dona; vazio = sem vínculo
	AccreditingName    string
	PlanoID            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
