package dto

import "time"

// CreatePlanoRequest entrada para cadastrar um plano de benefícios.
type CreatePlanoRequest struct {
	Nome      string `json:"nome" validate:"required,min=2"`
	Descricao string `json:"descricao" validate:"omitempty"`
}

// UpdatePlanoRequest entrada para atualizar um plano.
type UpdatePlanoRequest struct {
	Nome      string `json:"nome" validate:"required,min=2"`
	Descricao string `json:"descricao" validate:"omitempty"`
}

// PlanoResponse saída de um plano.
type PlanoResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Descricao     string    `json:"descricao,omitempty"`
	AccreditingID string    `json:"accrediting_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PlanoListResponse lista de planos.
type PlanoListResponse struct {
	Items []PlanoResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
