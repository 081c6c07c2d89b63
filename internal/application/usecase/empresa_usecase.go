package usecase

import (
	"time"

	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
	"github.com/jhoicas/credenciamento-api/pkg/docfiscal"
)

// EmpresaUseCase aplica regras de negócio para empresas conveniadas.
type EmpresaUseCase struct {
	repo       repository.EmpresaRepository
	credoraRep repository.CredenciadoraRepository
	authUC     *auth.AuthUseCase
}

// NewEmpresaUseCase constrói o caso de uso com os portos de persistência.
func NewEmpresaUseCase(repo repository.EmpresaRepository, credoraRep repository.CredenciadoraRepository, authUC *auth.AuthUseCase) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo, credoraRep: credoraRep, authUC: authUC}
}

// Create cadastra uma empresa. Primeiro provisiona a identidade de acesso
// para o email informado; se o email já existir nada é gravado. O documento
// da empresa é gravado sob o mesmo id da identidade. O documento fiscal é
// normalizado para a forma mascarada antes de persistir.
func (uc *EmpresaUseCase) Create(actor Actor, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	documento := maskCNPJCAEPF(in.CNPJCAEPF)
	existing, _ := uc.repo.GetByCNPJ(documento)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	userID, err := uc.authUC.ProvisionLogin(in.EmailAcesso, in.NomeFantasia, entity.RoleBusiness)
	if err != nil {
		return nil, err
	}

	accreditingID, accreditingName := uc.resolveAccrediting(actor)
	now := time.Now()
	empresa := &entity.Empresa{
		ID:                 userID,
		RazaoSocial:        in.RazaoSocial,
		NomeFantasia:       in.NomeFantasia,
		EmailAcesso:        in.EmailAcesso,
		CNPJCAEPF:          documento,
		Endereco:           in.Endereco,
		CEP:                docfiscal.MaskCEP(in.CEP),
		NumeroFuncionarios: in.NumeroFuncionarios,
		ContatoRH:          toContato(in.ContatoRH),
		ContatoFinanceiro:  toContato(in.ContatoFinanceiro),
		AccreditingID:      accreditingID,
		AccreditingName:    accreditingName,
		PlanoID:            in.PlanoID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(empresa), nil
}

// GetByID obtém uma empresa por ID.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return entityToEmpresaResponse(empresa), nil
}

// List lista empresas com paginação, no escopo do ator: credenciadoras veem
// apenas a própria rede, os demais papéis veem tudo.
func (uc *EmpresaUseCase) List(actor Actor, limit, offset int) (*dto.EmpresaListResponse, error) {
	var (
		list []*entity.Empresa
		err  error
	)
	if actor.Role == entity.RoleAccrediting {
		list, err = uc.repo.ListByAccrediting(actor.UserID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update sobrescreve o documento da empresa. O email de acesso e a
// credenciadora de origem não mudam por aqui.
func (uc *EmpresaUseCase) Update(id string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	empresa.RazaoSocial = in.RazaoSocial
	empresa.NomeFantasia = in.NomeFantasia
	empresa.CNPJCAEPF = maskCNPJCAEPF(in.CNPJCAEPF)
	empresa.Endereco = in.Endereco
	empresa.CEP = docfiscal.MaskCEP(in.CEP)
	empresa.NumeroFuncionarios = in.NumeroFuncionarios
	empresa.ContatoRH = toContato(in.ContatoRH)
	empresa.ContatoFinanceiro = toContato(in.ContatoFinanceiro)
	empresa.PlanoID = in.PlanoID
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return entityToEmpresaResponse(empresa), nil
}

// Delete remove a empresa definitivamente.
func (uc *EmpresaUseCase) Delete(id string) error {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// resolveAccrediting devolve a credenciadora de origem do cadastro quando o
// ator é uma credenciadora; admins cadastram sem vínculo.
func (uc *EmpresaUseCase) resolveAccrediting(actor Actor) (id, nome string) {
	if actor.Role != entity.RoleAccrediting {
		return "", ""
	}
	credora, err := uc.credoraRep.GetByID(actor.UserID)
	if err != nil || credora == nil {
		return actor.UserID, ""
	}
	return actor.UserID, credora.NomeFantasia
}

// maskCNPJCAEPF escolhe a máscara pela validade do valor: CNPJ quando o
// checksum fecha, CAEPF caso contrário. A validação de entrada já garantiu
// que é um dos dois.
func maskCNPJCAEPF(s string) string {
	if docfiscal.ValidCNPJ(s) {
		return docfiscal.MaskCNPJ(s)
	}
	return docfiscal.MaskCAEPF(s)
}

func toContato(c dto.ContatoDTO) entity.Contato {
	return entity.Contato{
		Nome:     c.Nome,
		Email:    c.Email,
		Telefone: docfiscal.MaskTelefone(c.Telefone),
	}
}

func toContatoDTO(c entity.Contato) dto.ContatoDTO {
	return dto.ContatoDTO{Nome: c.Nome, Email: c.Email, Telefone: c.Telefone}
}

func entityToEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:                 e.ID,
		RazaoSocial:        e.RazaoSocial,
		NomeFantasia:       e.NomeFantasia,
		EmailAcesso:        e.EmailAcesso,
		CNPJCAEPF:          e.CNPJCAEPF,
		Endereco:           e.Endereco,
		CEP:                e.CEP,
		NumeroFuncionarios: e.NumeroFuncionarios,
		ContatoRH:          toContatoDTO(e.ContatoRH),
		ContatoFinanceiro:  toContatoDTO(e.ContatoFinanceiro),
		AccreditingID:      e.AccreditingID,
		AccreditingName:    e.AccreditingName,
		PlanoID:            e.PlanoID,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
