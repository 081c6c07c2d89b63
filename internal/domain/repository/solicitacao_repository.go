package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// SolicitacaoRepository define o porto de persistência para Solicitacao (DIP).
type SolicitacaoRepository interface {
	Create(solicitacao *entity.Solicitacao) error
	GetByID(id string) (*entity.Solicitacao, error)
	Update(solicitacao *entity.Solicitacao) error
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Solicitacao, error)
	ListByCredenciado(credenciadoID string, limit, offset int) ([]*entity.Solicitacao, error)
	Delete(id string) error
}
