package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// CredenciadoRepository define o porto de persistência para Credenciado (DIP).
type CredenciadoRepository interface {
	Create(credenciado *entity.Credenciado) error
	GetByID(id string) (*entity.Credenciado, error)
	GetByDocumento(tipo, numero string) (*entity.Credenciado, error)
	Update(credenciado *entity.Credenciado) error
	UpdateImagemURL(id, imagemURL string) error
	List(limit, offset int) ([]*entity.Credenciado, error)
	ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Credenciado, error)
	Delete(id string) error
}
