package entity

import "time"

// Tipo de pessoa do credenciado.
const (
	PessoaJuridica = "PJ"
	PessoaFisica   = "PF"
)

// Esquemas de documento fiscal aceitos para um credenciado.
const (
	DocumentoCNPJ  = "CNPJ"
	DocumentoCPF   = "CPF"
	DocumentoCEI   = "CEI"
	DocumentoCAEPF = "CAEPF"
)

// Documento é a variante etiquetada do documento fiscal do credenciado:
// PJ carrega exatamente um CNPJ; PF carrega exatamente um de CPF, CEI ou
// CAEPF. Numero fica na forma mascarada canônica.
type Documento struct {
	Tipo   string
	Numero string
}

// Credenciado representa um prestador credenciado da rede (clínica,
// profissional autônomo etc.). O ID coincide com o UID do login provisionado.
type Credenciado struct {
	ID              string
	TipoPessoa      string // PJ | PF
	RazaoSocial     string // obrigatório para PJ
	NomeFantasia    string // para PF é o nome da pessoa
	EmailAcesso     string
	Documento       Documento
	Endereco        string
	CEP             string
	Telefone        string
	ContatoRH       *Contato // opcional, somente PJ
	SegmentoID      string
	ImagemURL       string // logo; vazio = sem imagem
	AccreditingID   string
	AccreditingName string
	PlanoID         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
