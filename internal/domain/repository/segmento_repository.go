package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// SegmentoRepository define o porto de leitura para Segmento.
type SegmentoRepository interface {
	List() ([]*entity.Segmento, error)
	GetByID(id string) (*entity.Segmento, error)
}
