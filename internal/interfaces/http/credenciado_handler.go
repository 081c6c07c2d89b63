package http

import (
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/dto"
	"github.com/jhoicas/credenciamento-api/internal/application/usecase"
)

// CredenciadoHandler trata as requisições HTTP do recurso Credenciado.
// O cadastro aceita multipart com um campo "logo" opcional.
type CredenciadoHandler struct {
	uc       *usecase.CredenciadoUseCase
	validate *validator.Validate
}

// NewCredenciadoHandler constrói o handler injetando o caso de uso.
func NewCredenciadoHandler(uc *usecase.CredenciadoUseCase, validate *validator.Validate) *CredenciadoHandler {
	return &CredenciadoHandler{uc: uc, validate: validate}
}

// Create godoc
// @Summary      Cadastrar credenciado
// @Description  Aceita JSON puro ou multipart/form-data com os dados no campo
// @Description  "dados" e a imagem no campo "logo".
// @Tags         credenciados
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.CredenciadoResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/credenciados [post]
func (h *CredenciadoHandler) Create(c *fiber.Ctx) error {
	in, logo, err := parseCredenciadoForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	if err := h.validate.Struct(in); err != nil {
		return respondValidation(c, err)
	}
	out, err := h.uc.Create(actor(c), in, logo)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter credenciado por ID
// @Tags         credenciados
// @Produce      json
// @Param        id   path  string  true  "ID do credenciado"
// @Success      200  {object}  dto.CredenciadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credenciados/{id} [get]
func (h *CredenciadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "credenciado não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar credenciados
// @Tags         credenciados
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CredenciadoListResponse
// @Router       /api/credenciados [get]
func (h *CredenciadoHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(actor(c), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar credenciado
// @Tags         credenciados
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID do credenciado"
// @Param        body  body  dto.UpdateCredenciadoRequest  true  "Dados do credenciado"
// @Success      200   {object}  dto.CredenciadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credenciados/{id} [put]
func (h *CredenciadoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCredenciadoRequest
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

// UploadLogo godoc
// @Summary      Enviar ou substituir o logo do credenciado
// @Tags         credenciados
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID do credenciado"
// @Param        logo  formData  file    true  "Imagem"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/credenciados/{id}/logo [post]
func (h *CredenciadoHandler) UploadLogo(c *fiber.Ctx) error {
	fh, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "campo 'logo' obrigatório"})
	}
	data, err := lerArquivo(fh)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "não foi possível ler a imagem"})
	}
	url, err := h.uc.UploadLogo(c.Params("id"), data)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"imagem_url": url})
}

// Delete godoc
// @Summary      Remover credenciado
// @Tags         credenciados
// @Param        id  path  string  true  "ID do credenciado"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credenciados/{id} [delete]
func (h *CredenciadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseCredenciadoForm aceita o corpo em JSON puro ou em multipart. No
// multipart os dados ficam serializados no campo "dados" e a imagem,
// opcional, no campo "logo".
func parseCredenciadoForm(c *fiber.Ctx) (dto.CreateCredenciadoRequest, []byte, error) {
	var in dto.CreateCredenciadoRequest

	form, err := c.MultipartForm()
	if err != nil {
		if err := c.BodyParser(&in); err != nil {
			return in, nil, err
		}
		return in, nil, nil
	}

	dados := form.Value["dados"]
	if len(dados) == 0 {
		return in, nil, fiber.NewError(fiber.StatusBadRequest, "campo 'dados' obrigatório")
	}
	if err := json.Unmarshal([]byte(dados[0]), &in); err != nil {
		return in, nil, err
	}

	var logo []byte
	if files := form.File["logo"]; len(files) > 0 {
		logo, err = lerArquivo(files[0])
		if err != nil {
			return in, nil, err
		}
	}
	return in, logo, nil
}

func lerArquivo(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
