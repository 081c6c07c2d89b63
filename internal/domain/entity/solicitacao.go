package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma solicitação de serviço. A base histórica contém duas grafias
// para "confirmado"; a forma canônica gravada é StatusConfirmada, e a leitura
// aceita a grafia legada.
const (
	StatusPendente         = "pendente"
	StatusConfirmada       = "confirmada"
	StatusConfirmadoLegado = "confirmado"
)

// Solicitacao representa um serviço solicitado a um credenciado.
type Solicitacao struct {
	ID            string
	DonoID        string // credenciado dono da solicitação
	CredenciadoID string // campo alternativo de atribuição presente na base histórica
	SolicitanteID string
	Preco         decimal.Decimal
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Confirmada informa se o status denota serviço confirmado/faturável,
// aceitando as duas grafias históricas.
func (s Solicitacao) Confirmada() bool {
	return StatusConfirmado(s.Status)
}

// StatusConfirmado reconhece as duas grafias históricas de "confirmado".
func StatusConfirmado(status string) bool {
	return status == StatusConfirmada || status == StatusConfirmadoLegado
}

// NormalizeStatus converte a grafia legada para a forma canônica.
func NormalizeStatus(status string) string {
	if status == StatusConfirmadoLegado {
		return StatusConfirmada
	}
	return status
}
