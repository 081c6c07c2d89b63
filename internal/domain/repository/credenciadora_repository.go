package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// CredenciadoraRepository define o porto de persistência para Credenciadora (DIP).
type CredenciadoraRepository interface {
	Create(credenciadora *entity.Credenciadora) error
	GetByID(id string) (*entity.Credenciadora, error)
	List(limit, offset int) ([]*entity.Credenciadora, error)
	Update(credenciadora *entity.Credenciadora) error
}
