package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
)

// SolicitacaoHandler trata as requisições HTTP do recurso Solicitacao.
type SolicitacaoHandler struct {
	uc       *usecase.SolicitacaoUseCase
	validate *validator.Validate
}

func NewSolicitacaoHandler(uc *usecase.SolicitacaoUseCase, validate *validator.Validate) *SolicitacaoHandler {
	return &SolicitacaoHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Registrar solicitação de serviço
// @Description  Toda solicitação nasce pendente; o status muda via PATCH.
// @Tags         solicitacoes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitacaoRequest  true  "Dados da solicitação"
// @Success      201   {object}  dto.SolicitacaoResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/solicitacoes [post]
func (h *SolicitacaoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter solicitação por ID
// @Tags         solicitacoes
// @Produce      json
// @Param        id   path  string  true  "ID da solicitação"
// @Success      200  {object}  dto.SolicitacaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitacoes/{id} [get]
func (h *SolicitacaoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitação não encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar solicitações do escopo do usuário
// @Tags         solicitacoes
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SolicitacaoListResponse
// @Router       /api/solicitacoes [get]
func (h *SolicitacaoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(actor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Atualizar status da solicitação
// @Tags         solicitacoes
// @Accept       json
// @Produce      json
// @Param        id    path  string                              true  "ID da solicitação"
// @Param        body  body  dto.UpdateSolicitacaoStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.SolicitacaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitacoes/{id}/status [patch]
func (h *SolicitacaoHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateSolicitacaoStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover solicitação
// @Tags         solicitacoes
// @Param        id  path  string  true  "ID da solicitação"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/solicitacoes/{id} [delete]
func (h *SolicitacaoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
