package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que PlanoRepo implementa repository.PlanoRepository.
var _ repository.PlanoRepository = (*PlanoRepo)(nil)

// PlanoRepo implementação do porto PlanoRepository sobre PostgreSQL.
type PlanoRepo struct {
	pool *pgxpool.Pool
}

// NewPlanoRepository constrói o adaptador de persistência de planos.
func NewPlanoRepository(pool *pgxpool.Pool) *PlanoRepo {
	return &PlanoRepo{pool: pool}
}

const planoColumns = `id, nome, descricao, accrediting_id, created_at, updated_at`

// Create persiste um novo plano.
func (r *PlanoRepo) Create(p *entity.Plano) error {
	query := `INSERT INTO planos (` + planoColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		p.ID, p.Nome, p.Descricao, p.AccreditingID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert plano: %w", err)
	}
	return nil
}

// GetByID obtém um plano por ID.
func (r *PlanoRepo) GetByID(id string) (*entity.Plano, error) {
	query := `SELECT ` + planoColumns + ` FROM planos WHERE id = $1`
	p, err := scanPlano(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plano: %w", err)
	}
	return p, nil
}

// Update sobrescreve nome e descrição.
func (r *PlanoRepo) Update(p *entity.Plano) error {
	query := `UPDATE planos SET nome = $2, descricao = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, p.ID, p.Nome, p.Descricao, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update plano: %w", err)
	}
	return nil
}

// List devolve planos ordenados por nome. Limit zero devolve todos.
func (r *PlanoRepo) List(limit, offset int) ([]*entity.Plano, error) {
	return r.list(`SELECT `+planoColumns+` FROM planos ORDER BY nome`, nil, limit, offset)
}

// ListByAccrediting devolve os planos de uma credenciadora.
func (r *PlanoRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Plano, error) {
	query := `SELECT ` + planoColumns + ` FROM planos WHERE accrediting_id = $1 ORDER BY nome`
	return r.list(query, []any{accreditingID}, limit, offset)
}

// Delete remove um plano por ID.
func (r *PlanoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM planos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete plano: %w", err)
	}
	return nil
}

func (r *PlanoRepo) list(query string, args []any, limit, offset int) ([]*entity.Plano, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list planos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plano
	for rows.Next() {
		p, err := scanPlano(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plano: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPlano(row rowScanner) (*entity.Plano, error) {
	var p entity.Plano
	err := row.Scan(&p.ID, &p.Nome, &p.Descricao, &p.AccreditingID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
