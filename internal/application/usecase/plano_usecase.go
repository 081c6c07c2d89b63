package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/domain"
	"github.com/jhoicas/credenciamento-api/internal/domain/entity"
	"github.com/jhoicas/credenciamento-api/internal/domain/repository"
)

// PlanoUseCase aplica regras de negócio para planos de benefícios.
type PlanoUseCase struct {
	repo repository.PlanoRepository
}

// NewPlanoUseCase constrói o caso de uso com o porto de persistência.
func NewPlanoUseCase(repo repository.PlanoRepository) *PlanoUseCase {
	return &PlanoUseCase{repo: repo}
}

// Create cadastra um plano. Credenciadoras criam planos vinculados a si.
func (uc *PlanoUseCase) Create(actor Actor, in dto.CreatePlanoRequest) (*dto.PlanoResponse, error) {
	accreditingID := ""
	if actor.Role == entity.RoleAccrediting {
		accreditingID = actor.UserID
	}
	now := time.Now()
	plano := &entity.Plano{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		Descricao:     in.Descricao,
		AccreditingID: accreditingID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(plano); err != nil {
		return nil, err
	}
	return entityToPlanoResponse(plano), nil
}

// GetByID obtém um plano por ID.
func (uc *PlanoUseCase) GetByID(id string) (*dto.PlanoResponse, error) {
	plano, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, nil
	}
	return entityToPlanoResponse(plano), nil
}

// List lista planos. Credenciadoras veem apenas os próprios planos, os
// demais papéis veem todos.
func (uc *PlanoUseCase) List(actor Actor, limit, offset int) (*dto.PlanoListResponse, error) {
	var (
		list []*entity.Plano
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
	items := make([]dto.PlanoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPlanoResponse(p))
	}
	return &dto.PlanoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update sobrescreve nome e descrição do plano.
func (uc *PlanoUseCase) Update(id string, in dto.UpdatePlanoRequest) (*dto.PlanoResponse, error) {
	plano, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plano == nil {
		return nil, domain.ErrNotFound
	}
	plano.Nome = in.Nome
	plano.Descricao = in.Descricao
	plano.UpdatedAt = time.Now()
	if err := uc.repo.Update(plano); err != nil {
		return nil, err
	}
	return entityToPlanoResponse(plano), nil
}

// Delete remove o plano definitivamente.
func (uc *PlanoUseCase) Delete(id string) error {
	plano, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if plano == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToPlanoResponse(p *entity.Plano) *dto.PlanoResponse {
	if p == nil {
		return nil
	}
	return &dto.PlanoResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		AccreditingID: p.AccreditingID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
