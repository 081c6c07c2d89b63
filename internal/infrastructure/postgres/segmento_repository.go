package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que SegmentoRepo implementa repository.SegmentoRepository.
var _ repository.SegmentoRepository = (*SegmentoRepo)(nil)

// SegmentoRepo leitura dos segmentos de atuação.
type SegmentoRepo struct {
	pool *pgxpool.Pool
}

// NewSegmentoRepository constrói o adaptador de leitura de segmentos.
func NewSegmentoRepository(pool *pgxpool.Pool) *SegmentoRepo {
	return &SegmentoRepo{pool: pool}
}

// List devolve todos os segmentos ordenados por nome.
func (r *SegmentoRepo) List() ([]*entity.Segmento, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT id, nome FROM segmentos ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list segmentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Segmento
	for rows.Next() {
		var s entity.Segmento
		if err := rows.Scan(&s.ID, &s.Nome); err != nil {
			return nil, fmt.Errorf("scan segmento: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// GetByID obtém um segmento por ID.
func (r *SegmentoRepo) GetByID(id string) (*entity.Segmento, error) {
	var s entity.Segmento
	err := r.pool.QueryRow(context.Background(), `SELECT id, nome FROM segmentos WHERE id = $1`, id).
		Scan(&s.ID, &s.Nome)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get segmento: %w", err)
	}
	return &s, nil
}
