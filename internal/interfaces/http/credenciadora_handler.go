package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
)

// CredenciadoraHandler trata as requisições HTTP do recurso Credenciadora e
// expõe a lista de segmentos de atuação.
type CredenciadoraHandler struct {
	uc       *usecase.CredenciadoraUseCase
	validate *validator.Validate
}

func NewCredenciadoraHandler(uc *usecase.CredenciadoraUseCase, validate *validator.Validate) *CredenciadoraHandler {
	return &CredenciadoraHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar credenciadora
// @Tags         credenciadoras
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCredenciadoraRequest  true  "Dados da credenciadora"
// @Success      201   {object}  dto.CredenciadoraResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/credenciadoras [post]
func (h *CredenciadoraHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCredenciadoraRequest
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
// @Summary      Obter credenciadora por ID
// @Tags         credenciadoras
// @Produce      json
// @Param        id   path  string  true  "ID da credenciadora"
// @Success      200  {object}  dto.CredenciadoraResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credenciadoras/{id} [get]
func (h *CredenciadoraHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "credenciadora não encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar credenciadora
// @Tags         credenciadoras
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID da credenciadora"
// @Param        body  body  dto.UpdateCredenciadoraRequest  true  "Dados da credenciadora"
// @Success      200   {object}  dto.CredenciadoraResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credenciadoras/{id} [put]
func (h *CredenciadoraHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCredenciadoraRequest
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

// List godoc
// @Summary      Listar credenciadoras
// @Tags         credenciadoras
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CredenciadoraListResponse
// @Router       /api/credenciadoras [get]
func (h *CredenciadoraHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSegmentos godoc
// @Summary      Listar segmentos de atuação
// @Tags         credenciadoras
// @Produce      json
// @Success      200  {array}  dto.SegmentoResponse
// @Router       /api/segmentos [get]
func (h *CredenciadoraHandler) ListSegmentos(c *fiber.Ctx) error {
	out, err := h.uc.ListSegmentos()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
