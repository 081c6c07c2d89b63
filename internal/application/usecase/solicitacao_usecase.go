package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// SolicitacaoUseCase aplica regras de negócio para solicitações de serviço.
type SolicitacaoUseCase struct {
	repo repository.SolicitacaoRepository
}

// NewSolicitacaoUseCase constrói o caso de uso com o porto de persistência.
func NewSolicitacaoUseCase(repo repository.SolicitacaoRepository) *SolicitacaoUseCase {
	return &SolicitacaoUseCase{repo: repo}
}

// Create registra uma solicitação pendente.
func (uc *SolicitacaoUseCase) Create(in dto.CreateSolicitacaoRequest) (*dto.SolicitacaoResponse, error) {
	now := time.Now()
	solicitacao := &entity.Solicitacao{
		ID:            uuid.New().String(),
		DonoID:        in.DonoID,
		SolicitanteID: in.SolicitanteID,
		Preco:         in.Preco,
		Status:        entity.StatusPendente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(solicitacao); err != nil {
		return nil, err
	}
	return entityToSolicitacaoResponse(solicitacao), nil
}

// GetByID obtém uma solicitação por ID.
func (uc *SolicitacaoUseCase) GetByID(id string) (*dto.SolicitacaoResponse, error) {
	solicitacao, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if solicitacao == nil {
		return nil, nil
	}
	return entityToSolicitacaoResponse(solicitacao), nil
}

// List lista solicitações. Credenciados veem apenas as próprias.
func (uc *SolicitacaoUseCase) List(actor Actor, limit, offset int) (*dto.SolicitacaoListResponse, error) {
	var (
		list []*entity.Solicitacao
		err  error
	)
	if actor.Role == entity.RoleAccredited {
		list, err = uc.repo.ListByCredenciado(actor.UserID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.SolicitacaoResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *entityToSolicitacaoResponse(s))
	}
	return &dto.SolicitacaoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus troca o status de uma solicitação. A grafia legada de
// confirmado é normalizada antes de gravar.
func (uc *SolicitacaoUseCase) UpdateStatus(id string, in dto.UpdateSolicitacaoStatusRequest) (*dto.SolicitacaoResponse, error) {
	solicitacao, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if solicitacao == nil {
		return nil, domain.ErrNotFound
	}
	solicitacao.Status = entity.NormalizeStatus(in.Status)
	solicitacao.UpdatedAt = time.Now()
	if err := uc.repo.UpdateStatus(id, solicitacao.Status); err != nil {
		return nil, err
	}
	return entityToSolicitacaoResponse(solicitacao), nil
}

// Delete remove a solicitação definitivamente.
func (uc *SolicitacaoUseCase) Delete(id string) error {
	solicitacao, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if solicitacao == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToSolicitacaoResponse(s *entity.Solicitacao) *dto.SolicitacaoResponse {
	if s == nil {
		return nil
	}
	return &dto.SolicitacaoResponse{
		ID:            s.ID,
		DonoID:        s.DonoID,
		CredenciadoID: s.CredenciadoID,
		SolicitanteID: s.SolicitanteID,
		Preco:         s.Preco,
		Status:        entity.NormalizeStatus(s.Status),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
