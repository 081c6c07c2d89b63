package http

import (
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/importer"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
)

// FuncionarioHandler trata as requisições HTTP do recurso Funcionario,
// incluindo a importação em massa via CSV.
type FuncionarioHandler struct {
	uc       *usecase.FuncionarioUseCase
	imp      *importer.CSVImporter
	validate *validator.Validate
}

// NewFuncionarioHandler constrói o handler injetando caso de uso e importador.
func NewFuncionarioHandler(uc *usecase.FuncionarioUseCase, imp *importer.CSVImporter, validate *validator.Validate) *FuncionarioHandler {
	return &FuncionarioHandler{uc: uc, imp: imp, validate: validate}
}

// Create godoc
// @Summary      Cadastrar funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFuncionarioRequest  true  "Dados do funcionário"
// @Success      201   {object}  dto.FuncionarioResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/funcionarios [post]
func (h *FuncionarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFuncionarioRequest
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
// @Summary      Obter funcionário por ID
// @Tags         funcionarios
// @Produce      json
// @Param        id   path  string  true  "ID do funcionário"
// @Success      200  {object}  dto.FuncionarioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [get]
func (h *FuncionarioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "funcionário não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar funcionários do escopo do usuário
// @Tags         funcionarios
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.FuncionarioListResponse
// @Router       /api/funcionarios [get]
func (h *FuncionarioHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(actor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar funcionário
// @Tags         funcionarios
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID do funcionário"
// @Param        body  body  dto.UpdateFuncionarioRequest  true  "Dados do funcionário"
// @Success      200   {object}  dto.FuncionarioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [put]
func (h *FuncionarioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFuncionarioRequest
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
// @Summary      Desligar funcionário (soft delete)
// @Tags         funcionarios
// @Param        id  path  string  true  "ID do funcionário"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/funcionarios/{id} [delete]
func (h *FuncionarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Import godoc
// @Summary      Importar funcionários via CSV
// @Description  Recebe um arquivo CSV no campo "arquivo" e processa linha a linha.
// @Tags         funcionarios
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "Arquivo CSV"
// @Success      200      {object}  dto.ImportResult
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/funcionarios/import [post]
func (h *FuncionarioHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'arquivo' obrigatório"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler o arquivo"})
	}
	out, err := h.imp.Import(actor(c), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Template godoc
// @Summary      Baixar modelo CSV de importação
// @Tags         funcionarios
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/funcionarios/import/template [get]
func (h *FuncionarioHandler) Template(c *fiber.Ctx) error {
	data, err := h.imp.Template()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="modelo_funcionarios.csv"`)
	return c.Send(data)
}
