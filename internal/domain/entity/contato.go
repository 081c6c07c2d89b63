package entity

// Contato pessoa de referência de uma empresa ou credenciado (RH, financeiro).
type Contato struct {
	Nome     string
	Email    string
	Telefone string
}
