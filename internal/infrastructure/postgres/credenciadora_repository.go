package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que CredenciadoraRepo implementa repository.CredenciadoraRepository.
var _ repository.CredenciadoraRepository = (*CredenciadoraRepo)(nil)

// CredenciadoraRepo implementação do porto CredenciadoraRepository sobre
// PostgreSQL.
type CredenciadoraRepo struct {
	pool *pgxpool.Pool
}

// NewCredenciadoraRepository constrói o adaptador de persistência de
// credenciadoras.
func NewCredenciadoraRepository(pool *pgxpool.Pool) *CredenciadoraRepo {
	return &CredenciadoraRepo{pool: pool}
}

const credenciadoraColumns = `id, nome_fantasia, email, created_at, updated_at`

// Create persiste uma nova credenciadora sob o id da identidade.
func (r *CredenciadoraRepo) Create(c *entity.Credenciadora) error {
	query := `INSERT INTO credenciadoras (` + credenciadoraColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.NomeFantasia, c.Email, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert credenciadora: %w", err)
	}
	return nil
}

// GetByID obtém uma credenciadora por ID.
func (r *CredenciadoraRepo) GetByID(id string) (*entity.Credenciadora, error) {
	query := `SELECT ` + credenciadoraColumns + ` FROM credenciadoras WHERE id = $1`
	var c entity.Credenciadora
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NomeFantasia, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credenciadora: %w", err)
	}
	return &c, nil
}

// List devolve credenciadoras ordenadas por nome. Limit zero devolve todas.
func (r *CredenciadoraRepo) List(limit, offset int) ([]*entity.Credenciadora, error) {
	query := `SELECT ` + credenciadoraColumns + ` FROM credenciadoras ORDER BY nome_fantasia`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credenciadoras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Credenciadora
	for rows.Next() {
		var c entity.Credenciadora
		if err := rows.Scan(&c.ID, &c.NomeFantasia, &c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan credenciadora: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update sobrescreve o cadastro da credenciadora.
func (r *CredenciadoraRepo) Update(c *entity.Credenciadora) error {
	query := `UPDATE credenciadoras SET nome_fantasia = $2, email = $3, updated_at = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, c.ID, c.NomeFantasia, c.Email, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update credenciadora: %w", err)
	}
	return nil
}
