package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementação do porto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	pool *pgxpool.Pool
}

// NewEmpresaRepository constrói o adaptador de persistência de empresas.
func NewEmpresaRepository(pool *pgxpool.Pool) *EmpresaRepo {
	return &EmpresaRepo{pool: pool}
}

const empresaColumns = `
	id, razao_social, nome_fantasia, email_acesso, cnpj_caepf, endereco, cep,
	numero_funcionarios,
	contato_rh_nome, contato_rh_email, contato_rh_telefone,
	contato_fin_nome, contato_fin_email, contato_fin_telefone,
	accrediting_id, accrediting_name, plano_id, created_at, updated_at`

// Create persiste uma nova empresa sob o id já definido (o da identidade).
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (` + empresaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.RazaoSocial, e.NomeFantasia, e.EmailAcesso, e.CNPJCAEPF, e.Endereco, e.CEP,
		e.NumeroFuncionarios,
		e.ContatoRH.Nome, e.ContatoRH.Email, e.ContatoRH.Telefone,
		e.ContatoFinanceiro.Nome, e.ContatoFinanceiro.Email, e.ContatoFinanceiro.Telefone,
		e.AccreditingID, e.AccreditingName, e.PlanoID, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtém uma empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE id = $1`
	e, err := scanEmpresa(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return e, nil
}

// GetByCNPJ obtém uma empresa pelo documento fiscal (forma mascarada).
func (r *EmpresaRepo) GetByCNPJ(cnpj string) (*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE cnpj_caepf = $1`
	e, err := scanEmpresa(r.pool.QueryRow(context.Background(), query, cnpj))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by cnpj: %w", err)
	}
	return e, nil
}

// Update sobrescreve o documento da empresa.
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET
			razao_social = $2, nome_fantasia = $3, cnpj_caepf = $4, endereco = $5,
			cep = $6, numero_funcionarios = $7,
			contato_rh_nome = $8, contato_rh_email = $9, contato_rh_telefone = $10,
			contato_fin_nome = $11, contato_fin_email = $12, contato_fin_telefone = $13,
			plano_id = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.RazaoSocial, e.NomeFantasia, e.CNPJCAEPF, e.Endereco,
		e.CEP, e.NumeroFuncionarios,
		e.ContatoRH.Nome, e.ContatoRH.Email, e.ContatoRH.Telefone,
		e.ContatoFinanceiro.Nome, e.ContatoFinanceiro.Email, e.ContatoFinanceiro.Telefone,
		e.PlanoID, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// List devolve empresas ordenadas por criação. Limit zero devolve todas.
func (r *EmpresaRepo) List(limit, offset int) ([]*entity.Empresa, error) {
	return r.list(`SELECT `+empresaColumns+` FROM empresas ORDER BY created_at DESC`, nil, limit, offset)
}

// ListByAccrediting devolve as empresas da rede de uma credenciadora.
func (r *EmpresaRepo) ListByAccrediting(accreditingID string, limit, offset int) ([]*entity.Empresa, error) {
	query := `SELECT ` + empresaColumns + ` FROM empresas WHERE accrediting_id = $1 ORDER BY created_at DESC`
	return r.list(query, []any{accreditingID}, limit, offset)
}

// Delete remove uma empresa por ID.
func (r *EmpresaRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM empresas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}

func (r *EmpresaRepo) list(query string, args []any, limit, offset int) ([]*entity.Empresa, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Empresa
	for rows.Next() {
		e, err := scanEmpresa(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// rowScanner cobre pgx.Row e pgx.Rows para reusar os scans.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmpresa(row rowScanner) (*entity.Empresa, error) {
	var e entity.Empresa
	err := row.Scan(
		&e.ID, &e.RazaoSocial, &e.NomeFantasia, &e.EmailAcesso, &e.CNPJCAEPF, &e.Endereco, &e.CEP,
		&e.NumeroFuncionarios,
		&e.ContatoRH.Nome, &e.ContatoRH.Email, &e.ContatoRH.Telefone,
		&e.ContatoFinanceiro.Nome, &e.ContatoFinanceiro.Email, &e.ContatoFinanceiro.Telefone,
		&e.AccreditingID, &e.AccreditingName, &e.PlanoID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
