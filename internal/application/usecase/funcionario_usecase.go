package usecase

import (
	"time"

	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/report"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// FuncionarioUseCase aplica regras de negócio para funcionários.
type FuncionarioUseCase struct {
	repo        repository.FuncionarioRepository
	empresaRepo repository.EmpresaRepository
	authUC      *auth.AuthUseCase
}

// NewFuncionarioUseCase constrói o caso de uso com os portos de persistência.
func NewFuncionarioUseCase(repo repository.FuncionarioRepository, empresaRepo repository.EmpresaRepository, authUC *auth.AuthUseCase) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo, empresaRepo: empresaRepo, authUC: authUC}
}

// Create cadastra um funcionário. Provisiona a identidade de acesso para o
// email informado e grava o documento sob o mesmo id. Ator com papel
// business sempre cadastra na própria empresa, ignorando o empresa_id do
// corpo. CPF, quando informado, e telefone são normalizados para a forma
// mascarada; sem CPF não há verificação de duplicidade.
func (uc *FuncionarioUseCase) Create(actor Actor, in dto.CreateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	cpf := ""
	if in.CPF != "" {
		cpf = docfiscal.MaskCPF(in.CPF)
		existing, _ := uc.repo.GetByCPF(cpf)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}

	empresaID := in.EmpresaID
	if actor.Role == entity.RoleBusiness {
		empresaID = actor.UserID
	}

	userID, err := uc.authUC.ProvisionLogin(in.Email, in.Nome, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	funcionario := &entity.Funcionario{
		ID:             userID,
		Nome:           in.Nome,
		DataNascimento: in.DataNascimento,
		Endereco:       in.Endereco,
		CPF:            cpf,
		Email:          in.Email,
		Telefone:       docfiscal.MaskTelefone(in.Telefone),
		PessoasNaCasa:  in.PessoasNaCasa,
		EmpresaID:      empresaID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(funcionario); err != nil {
		return nil, err
	}
	return uc.toResponse(funcionario, nil), nil
}

// GetByID obtém um funcionário por ID. Registros apagados contam como
// inexistentes.
func (uc *FuncionarioUseCase) GetByID(id string) (*dto.FuncionarioResponse, error) {
	funcionario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil || funcionario.IsDeleted {
		return nil, nil
	}
	return uc.toResponse(funcionario, nil), nil
}

// List lista funcionários no escopo do ator, com o nome da empresa anexado
// a cada linha.
func (uc *FuncionarioUseCase) List(actor Actor, limit, offset int) (*dto.FuncionarioListResponse, error) {
	funcionarios, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	empresas, err := uc.empresaRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	escopo := report.ScopeFuncionarios(funcionarios, empresas, actor.Role, actor.UserID)
	enriquecidos := report.ComNomeEmpresa(escopo, empresas)

	items := make([]dto.FuncionarioResponse, 0, len(enriquecidos))
	for i := range enriquecidos {
		f := enriquecidos[i]
		items = append(items, *uc.toResponse(&f.Funcionario, &f.NomeEmpresa))
	}
	return &dto.FuncionarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update sobrescreve o documento do funcionário. Email de acesso não muda
// por aqui.
func (uc *FuncionarioUseCase) Update(id string, in dto.UpdateFuncionarioRequest) (*dto.FuncionarioResponse, error) {
	funcionario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if funcionario == nil || funcionario.IsDeleted {
		return nil, domain.ErrNotFound
	}
	funcionario.Nome = in.Nome
	funcionario.DataNascimento = in.DataNascimento
	funcionario.Endereco = in.Endereco
	funcionario.CPF = docfiscal.MaskCPF(in.CPF)
	funcionario.Telefone = docfiscal.MaskTelefone(in.Telefone)
	funcionario.PessoasNaCasa = in.PessoasNaCasa
	funcionario.EmpresaID = in.EmpresaID
	funcionario.UpdatedAt = time.Now()
	if err := uc.repo.Update(funcionario); err != nil {
		return nil, err
	}
	return uc.toResponse(funcionario, nil), nil
}

// Delete é lógico: marca o registro como apagado e preserva o histórico.
func (uc *FuncionarioUseCase) Delete(id string) error {
	funcionario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if funcionario == nil || funcionario.IsDeleted {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

func (uc *FuncionarioUseCase) toResponse(f *entity.Funcionario, nomeEmpresa *string) *dto.FuncionarioResponse {
	resp := &dto.FuncionarioResponse{
		ID:             f.ID,
		Nome:           f.Nome,
		DataNascimento: f.DataNascimento,
		Endereco:       f.Endereco,
		CPF:            f.CPF,
		Email:          f.Email,
		Telefone:       f.Telefone,
		PessoasNaCasa:  f.PessoasNaCasa,
		EmpresaID:      f.EmpresaID,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
	if nomeEmpresa != nil {
		resp.NomeEmpresa = *nomeEmpresa
	}
	return resp
}
