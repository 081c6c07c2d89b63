package repository

import "github.com/jhoicas/credenciamento-api/internal/domain/entity"

// FuncionarioRepository define o porto de persistência para Funcionario (DIP).
// Delete é lógico: marca is_deleted e deleted_at, preservando o histórico.
// As consultas de listagem excluem registros apagados.
type FuncionarioRepository interface {
	Create(funcionario *entity.Funcionario) error
	GetByID(id string) (*entity.Funcionario, error)
	GetByCPF(cpf string) (*entity.Funcionario, error)
	Update(funcionario *entity.Funcionario) error
	List(limit, offset int) ([]*entity.Funcionario, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Funcionario, error)
	CountByEmpresa(empresaID string) (int, error)
	SoftDelete(id string) error
}
