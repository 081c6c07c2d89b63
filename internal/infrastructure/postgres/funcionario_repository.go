package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// Garante que FuncionarioRepo implementa repository.FuncionarioRepository.
var _ repository.FuncionarioRepository = (*FuncionarioRepo)(nil)

// FuncionarioRepo implementação do porto FuncionarioRepository sobre
// PostgreSQL. O delete é lógico: is_deleted + deleted_at.
type FuncionarioRepo struct {
	pool *pgxpool.Pool
}

// NewFuncionarioRepository constrói o adaptador de persistência de
// funcionários.
func NewFuncionarioRepository(pool *pgxpool.Pool) *FuncionarioRepo {
	return &FuncionarioRepo{pool: pool}
}

const funcionarioColumns = `
	id, nome, data_nascimento, endereco, cpf, email, telefone, pessoas_na_casa,
	empresa_id, is_deleted, deleted_at, created_at, updated_at`

// Create persiste um novo funcionário sob o id da identidade provisionada.
func (r *FuncionarioRepo) Create(f *entity.Funcionario) error {
	query := `
		INSERT INTO funcionarios (` + funcionarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(context.Background(), query,
		f.ID, f.Nome, f.DataNascimento, f.Endereco, f.CPF, f.Email, f.Telefone, f.PessoasNaCasa,
		f.EmpresaID, f.IsDeleted, f.DeletedAt, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert funcionario: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID, inclusive os apagados (o caso de uso
// decide o que fazer com eles).
func (r *FuncionarioRepo) GetByID(id string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE id = $1`
	f, err := scanFuncionario(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario: %w", err)
	}
	return f, nil
}

// GetByCPF obtém um funcionário ativo pelo CPF (forma mascarada).
func (r *FuncionarioRepo) GetByCPF(cpf string) (*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE cpf = $1 AND NOT is_deleted`
	f, err := scanFuncionario(r.pool.QueryRow(context.Background(), query, cpf))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get funcionario by cpf: %w", err)
	}
	return f, nil
}

// Update sobrescreve o documento do funcionário.
func (r *FuncionarioRepo) Update(f *entity.Funcionario) error {
	query := `
		UPDATE funcionarios SET
			nome = $2, data_nascimento = $3, endereco = $4, cpf = $5, telefone = $6,
			pessoas_na_casa = $7, empresa_id = $8, updated_at = $9
		WHERE id = $1 AND NOT is_deleted`
	_, err := r.pool.Exec(context.Background(), query,
		f.ID, f.Nome, f.DataNascimento, f.Endereco, f.CPF, f.Telefone,
		f.PessoasNaCasa, f.EmpresaID, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update funcionario: %w", err)
	}
	return nil
}

// List devolve funcionários ativos ordenados por criação. Limit zero
// devolve todos.
func (r *FuncionarioRepo) List(limit, offset int) ([]*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE NOT is_deleted ORDER BY created_at DESC`
	return r.list(query, nil, limit, offset)
}

// ListByEmpresa devolve os funcionários ativos de uma empresa.
func (r *FuncionarioRepo) ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Funcionario, error) {
	query := `SELECT ` + funcionarioColumns + ` FROM funcionarios WHERE empresa_id = $1 AND NOT is_deleted ORDER BY created_at DESC`
	return r.list(query, []any{empresaID}, limit, offset)
}

// CountByEmpresa conta os funcionários ativos de uma empresa.
func (r *FuncionarioRepo) CountByEmpresa(empresaID string) (int, error) {
	var n int
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM funcionarios WHERE empresa_id = $1 AND NOT is_deleted`, empresaID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count funcionarios: %w", err)
	}
	return n, nil
}

// SoftDelete marca o funcionário como apagado, preservando o registro.
func (r *FuncionarioRepo) SoftDelete(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE funcionarios SET is_deleted = true, deleted_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete funcionario: %w", err)
	}
	return nil
}

func (r *FuncionarioRepo) list(query string, args []any, limit, offset int) ([]*entity.Funcionario, error) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list funcionarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.Funcionario
	for rows.Next() {
		f, err := scanFuncionario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan funcionario: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func scanFuncionario(row rowScanner) (*entity.Funcionario, error) {
	var f entity.Funcionario
	err := row.Scan(
		&f.ID, &f.Nome, &f.DataNascimento, &f.Endereco, &f.CPF, &f.Email, &f.Telefone, &f.PessoasNaCasa,
		&f.EmpresaID, &f.IsDeleted, &f.DeletedAt, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
