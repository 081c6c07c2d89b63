package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSolicitacaoRequest entrada para registrar uma solicitação de serviço.
type CreateSolicitacaoRequest struct {
	DonoID        string          `json:"dono_id" validate:"required"`
	SolicitanteID string          `json:"solicitante_id" validate:"required"`
	Preco         decimal.Decimal `json:"preco" validate:"required"`
}

// UpdateSolicitacaoStatusRequest troca o status de uma solicitação.
type UpdateSolicitacaoStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendente confirmada confirmado"`
}

// SolicitacaoResponse saída de uma solicitação. Status sempre na grafia
// canônica, mesmo para registros históricos.
type SolicitacaoResponse struct {
	ID            string          `json:"id"`
	DonoID        string          `json:"dono_id"`
	CredenciadoID string          `json:"credenciado_id,omitempty"`
	SolicitanteID string          `json:"solicitante_id"`
	Preco         decimal.Decimal `json:"preco"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SolicitacaoListResponse lista paginada de solicitações.
type SolicitacaoListResponse struct {
	Items []SolicitacaoResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
