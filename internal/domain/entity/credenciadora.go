package entity

import "time"

// Credenciadora representa o órgão credenciador dono de planos, empresas e
// credenciados. O ID coincide com o UID do login da credenciadora.
type Credenciadora struct {
	ID           string
	NomeFantasia string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
