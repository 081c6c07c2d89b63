package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
)

// PlanoHandler trata as requisições HTTP do recurso Plano.
type PlanoHandler struct {
	uc       *usecase.PlanoUseCase
	validate *validator.Validate
}

func NewPlanoHandler(uc *usecase.PlanoUseCase, validate *validator.Validate) *PlanoHandler {
	return &PlanoHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar plano
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanoRequest  true  "Dados do plano"
// @Success      201   {object}  dto.PlanoResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/planos [post]
func (h *PlanoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePlanoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Create(actor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter plano por ID
// @Tags         planos
// @Produce      json
// @Param        id   path  string  true  "ID do plano"
// @Success      200  {object}  dto.PlanoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planos/{id} [get]
func (h *PlanoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plano não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar planos
// @Tags         planos
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.PlanoListResponse
// @Router       /api/planos [get]
func (h *PlanoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(actor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar plano
// @Tags         planos
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID do plano"
// @Param        body  body  dto.UpdatePlanoRequest  true  "Dados do plano"
// @Success      200   {object}  dto.PlanoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/planos/{id} [put]
func (h *PlanoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePlanoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover plano
// @Tags         planos
// @Param        id  path  string  true  "ID do plano"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planos/{id} [delete]
func (h *PlanoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
