package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que SolicitacaoRepo implementa repository.SolicitacaoRepository.
var _ repository.SolicitacaoRepository = (*SolicitacaoRepo)(nil)

// SolicitacaoRepo implementação do porto SolicitacaoRepository sobre
// PostgreSQL. O preço é NUMERIC, mapeado para shopspring/decimal pelo codec
// registrado no pool.
type SolicitacaoRepo struct {
	pool *pgxpool.Pool
}

// NewSolicitacaoRepository constrói o adaptador de persistência de
// solicitações.
func NewSolicitacaoRepository(pool *pgxpool.Pool) *SolicitacaoRepo {
	return &SolicitacaoRepo{pool: pool}
}

const solicitacaoColumns = `id, dono_id, credenciado_id, solicitante_id, preco, status, created_at, updated_at`

// Create persiste uma nova solicitação.
func (r *SolicitacaoRepo) Create(s *entity.Solicitacao) error {
	query := `INSERT INTO solicitacoes (` + solicitacaoColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.DonoID, s.CredenciadoID, s.SolicitanteID, s.Preco, s.Status, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert solicitacao: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID.
func (r *SolicitacaoRepo) GetByID(id string) (*entity.Solicitacao, error) {
	query := `SELECT ` + solicitacaoColumns + ` FROM solicitacoes WHERE id = $1`
	s, err := scanSolicitacao(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get solicitacao: %w", err)
	}
	return s, nil
}

// Update sobrescreve a solicitação.
func (r *SolicitacaoRepo) Update(s *entity.Solicitacao) error {
	query := `
		UPDATE solicitacoes SET
			dono_id = $2, credenciado_id = $3, solicitante_id = $4, preco = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.DonoID, s.CredenciadoID, s.SolicitanteID, s.Preco, s.Status, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update solicitacao: %w", err)
	}
	return nil
}

// UpdateStatus troca apenas o status.
func (r *SolicitacaoRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE solicitacoes SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status solicitacao: %w", err)
	}
	return nil
}

// List devolve solicitações da mais antiga para a mais recente, preservando
// a ordem de chegada que os rankings usam como desempate. Limit zero devolve
// todas.
func (r *SolicitacaoRepo) List(limit, offset int) ([]*entity.Solicitacao, error) {
	return r.list(`SELECT `+solicitacaoColumns+` FROM solicitacoes ORDER BY created_at`, nil, limit, offset)
}

// ListByCredenciado devolve as solicitações atribuídas a um credenciado,
// como dono ou pelo campo alternativo.
func (r *SolicitacaoRepo) ListByCredenciado(credenciadoID string, limit, offset int) ([]*entity.Solicitacao, error) {
	query := `SELECT ` + solicitacaoColumns + ` FROM solicitacoes WHERE dono_id = $1 OR credenciado_id = $1 ORDER BY created_at`
	return r.list(query, []any{credenciadoID}, limit, offset)
}

// Delete remove uma solicitação por ID.
func (r *SolicitacaoRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM solicitacoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete solicitacao: %w", err)
	}
	return nil
}

func (r *SolicitacaoRepo) list(query string, args []any, limit, offset int) ([]*entity.Solicitacao, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list solicitacoes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Solicitacao
	for rows.Next() {
		s, err := scanSolicitacao(rows)
		if err != nil {
			return nil, fmt.Errorf("scan solicitacao: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSolicitacao(row rowScanner) (*entity.Solicitacao, error) {
	var s entity.Solicitacao
	err := row.Scan(&s.ID, &s.DonoID, &s.CredenciadoID, &s.SolicitanteID, &s.Preco, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
