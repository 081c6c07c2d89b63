package dto

import "time"

// CreateCredenciadoRequest entrada para cadastrar um credenciado.
//
// O documento fiscal é uma variante etiquetada: tipo_pessoa PJ exige
// documento_tipo CNPJ com o campo cnpj preenchido; tipo_pessoa PF exige
// exatamente um entre cpf, cei e caepf, casando com documento_tipo. A regra
// cruzada vive no validador de struct registrado por validation.New.
type CreateCredenciadoRequest struct {
	TipoPessoa    string      `json:"tipo_pessoa" validate:"required,oneof=PJ PF"`
	DocumentoTipo string      `json:"documento_tipo" validate:"required,oneof=CNPJ CPF CEI CAEPF"`
	RazaoSocial   string      `json:"razao_social" validate:"omitempty,min=2"`
	NomeFantasia  string      `json:"nome_fantasia" validate:"required,min=2"`
	EmailAcesso   string      `json:"email_acesso" validate:"required,email"`
	CNPJ          string      `json:"cnpj" validate:"omitempty,cnpj"`
	CPF           string      `json:"cpf" validate:"omitempty,cpf"`
	CEI           string      `json:"cei" validate:"omitempty,cei"`
	CAEPF         string      `json:"caepf" validate:"omitempty,caepf"`
	Endereco      string      `json:"endereco" validate:"required,min=5"`
	CEP           string      `json:"cep" validate:"required,cep"`
	Telefone      string      `json:"telefone" validate:"required,telefone"`
	ContatoRH     *ContatoDTO `json:"contato_rh" validate:"omitempty"`
	SegmentoID    string      `json:"segmento_id" validate:"required"`
	PlanoID       string      `json:"plano_id" validate:"omitempty"`
}

// UpdateCredenciadoRequest entrada para atualizar um credenciado. Mesmas
// regras de variante do create.
type UpdateCredenciadoRequest struct {
	TipoPessoa    string      `json:"tipo_pessoa" validate:"required,oneof=PJ PF"`
	DocumentoTipo string      `json:"documento_tipo" validate:"required,oneof=CNPJ CPF CEI CAEPF"`
	RazaoSocial   string      `json:"razao_social" validate:"omitempty,min=2"`
	NomeFantasia  string      `json:"nome_fantasia" validate:"required,min=2"`
	CNPJ          string      `json:"cnpj" validate:"omitempty,cnpj"`
	CPF           string      `json:"cpf" validate:"omitempty,cpf"`
	CEI           string      `json:"cei" validate:"omitempty,cei"`
	CAEPF         string      `json:"caepf" validate:"omitempty,caepf"`
	Endereco      string      `json:"endereco" validate:"required,min=5"`
	CEP           string      `json:"cep" validate:"required,cep"`
	Telefone      string      `json:"telefone" validate:"required,telefone"`
	ContatoRH     *ContatoDTO `json:"contato_rh" validate:"omitempty"`
	SegmentoID    string      `json:"segmento_id" validate:"required"`
	PlanoID       string      `json:"plano_id" validate:"omitempty"`
}

// CredenciadoResponse saída de um credenciado.
type CredenciadoResponse struct {
	ID              string      `json:"id"`
	TipoPessoa      string      `json:"tipo_pessoa"`
	DocumentoTipo   string      `json:"documento_tipo"`
	Documento       string      `json:"documento"`
	RazaoSocial     string      `json:"razao_social,omitempty"`
	NomeFantasia    string      `json:"nome_fantasia"`
	EmailAcesso     string      `json:"email_acesso"`
	Endereco        string      `json:"endereco"`
	CEP             string      `json:"cep"`
	Telefone        string      `json:"telefone"`
	ContatoRH       *ContatoDTO `json:"contato_rh,omitempty"`
	SegmentoID      string      `json:"segmento_id"`
	ImagemURL       string      `json:"imagem_url,omitempty"`
	AccreditingID   string      `json:"accrediting_id,omitempty"`
	AccreditingName string      `json:"accrediting_name,omitempty"`
	PlanoID         string      `json:"plano_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CredenciadoListResponse lista paginada de credenciados.
type CredenciadoListResponse struct {
	Items []CredenciadoResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
