package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// PlanoRepository define o porto de persistência para Plano (DIP).
type PlanoRepository interface {
	Create(plano *entity.Plano) error
	GetByID(id string) (*entity.Plano, error)
	Update(plano *entity.Plano) error
	List(limit, offset int) ([]*entity.Plano, error)
	ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Plano, error)
	Delete(id string) error
}
