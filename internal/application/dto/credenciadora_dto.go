package dto

import "time"

// CreateCredenciadoraRequest entrada para cadastrar uma credenciadora.
type CreateCredenciadoraRequest struct {
	NomeFantasia string `json:"nome_fantasia" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
}

// UpdateCredenciadoraRequest entrada para atualizar uma credenciadora. O
// email de acesso não é alterável.
type UpdateCredenciadoraRequest struct {
	NomeFantasia string `json:"nome_fantasia" validate:"required,min=2"`
}

// CredenciadoraResponse saída de uma credenciadora.
type CredenciadoraResponse struct {
	ID           string    `json:"id"`
	NomeFantasia string    `json:"nome_fantasia"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CredenciadoraListResponse lista de credenciadoras.
type CredenciadoraListResponse struct {
	Items []CredenciadoraResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// SegmentoResponse saída de um segmento de atuação.
type SegmentoResponse struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
