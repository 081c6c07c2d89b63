package entity

import "time"

// Plano representa um plano de benefícios oferecido por uma credenciadora.
type Plano struct {
	ID            string
	Nome          string
	Descricao     string
	AccreditingID string // credenciadora dona do plano
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
