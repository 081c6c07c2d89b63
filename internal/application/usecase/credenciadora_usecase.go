package usecase

import (
	"time"

	"github.com/jhoicas/credenciamento-api/internal/application/auth"
	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// CredenciadoraUseCase casos de uso de credenciadoras e segmentos.
type CredenciadoraUseCase struct {
	repo         repository.CredenciadoraRepository
	segmentoRepo repository.SegmentoRepository
	authUC       *auth.AuthUseCase
}

// NewCredenciadoraUseCase constrói o caso de uso com os portos de leitura.
func NewCredenciadoraUseCase(
	repo repository.CredenciadoraRepository,
	segmentoRepo repository.SegmentoRepository,
	authUC *auth.AuthUseCase,
) *CredenciadoraUseCase {
	return &CredenciadoraUseCase{repo: repo, segmentoRepo: segmentoRepo, authUC: authUC}
}

// Create cadastra uma credenciadora. Provisiona a identidade de acesso com
// papel accrediting e grava o documento sob o mesmo id.
func (uc *CredenciadoraUseCase) Create(in dto.CreateCredenciadoraRequest) (*dto.CredenciadoraResponse, error) {
	userID, err := uc.authUC.ProvisionLogin(in.Email, in.NomeFantasia, entity.RoleAccrediting)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	credora := &entity.Credenciadora{
		ID:           userID,
		NomeFantasia: in.NomeFantasia,
		Email:        in.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(credora); err != nil {
		return nil, err
	}
	return entityToCredenciadoraResponse(credora), nil
}

// GetByID obtém uma credenciadora por ID.
func (uc *CredenciadoraUseCase) GetByID(id string) (*dto.CredenciadoraResponse, error) {
	credora, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if credora == nil {
		return nil, nil
	}
	return entityToCredenciadoraResponse(credora), nil
}

// Update sobrescreve o nome fantasia. O email é a chave de login e não muda
// por aqui.
func (uc *CredenciadoraUseCase) Update(id string, in dto.UpdateCredenciadoraRequest) (*dto.CredenciadoraResponse, error) {
	credora, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if credora == nil {
		return nil, domain.ErrNotFound
	}
	credora.NomeFantasia = in.NomeFantasia
	credora.UpdatedAt = time.Now()
	if err := uc.repo.Update(credora); err != nil {
		return nil, err
	}
	return entityToCredenciadoraResponse(credora), nil
}

// List lista credenciadoras.
func (uc *CredenciadoraUseCase) List(limit, offset int) (*dto.CredenciadoraListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CredenciadoraResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCredenciadoraResponse(c))
	}
	return &dto.CredenciadoraListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListSegmentos lista os segmentos de atuação disponíveis.
func (uc *CredenciadoraUseCase) ListSegmentos() ([]dto.SegmentoResponse, error) {
	list, err := uc.segmentoRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SegmentoResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.SegmentoResponse{ID: s.ID, Nome: s.Nome})
	}
	return items, nil
}

func entityToCredenciadoraResponse(c *entity.Credenciadora) *dto.CredenciadoraResponse {
	if c == nil {
		return nil
	}
	return &dto.CredenciadoraResponse{
		ID:           c.ID,
		NomeFantasia: c.NomeFantasia,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
