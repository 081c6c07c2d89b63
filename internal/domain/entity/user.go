package entity

import "time"

// Papéis válidos para User. Determinam o escopo de visão do painel:
// business vê a própria empresa, accrediting vê a sua rede, admin vê tudo.
const (
	RoleAdmin       = "admin"
	RoleAccrediting = "accrediting"
	RoleBusiness    = "business"
	RoleAccredited  = "accredited"
	RoleEmployee    = "employee"
)

// User representa uma identidade de login do painel. Registros de negócio
// (empresa, credenciado, funcionário) são gravados sob o mesmo ID do usuário
// provisionado para o email de acesso.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca em claro após persistir
	Name         string
	Role         string
	AvatarURL    string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
