package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/credenciamento-api/internal/application/analytics"
)

// OverviewHandler expõe o painel gerencial e as exportações de planilha e PDF.
type OverviewHandler struct {
	uc *analytics.OverviewUseCase
}

func NewOverviewHandler(uc *analytics.OverviewUseCase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// GetOverview godoc
// @Summary      Painel gerencial com contagens e rankings
// @Tags         overview
// @Produce      json
// @Success      200  {object}  dto.OverviewResponse
// @Router       /api/overview [get]
func (h *OverviewHandler) GetOverview(c *fiber.Ctx) error {
	out, err := h.uc.GetOverview(actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar dados gerenciais em XLSX
// @Tags         overview
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/overview/export/xlsx [get]
func (h *OverviewHandler) ExportXLSX(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportXLSX(actor(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// ExportPDF godoc
// @Summary      Exportar dados gerenciais em PDF
// @Tags         overview
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/overview/export/pdf [get]
func (h *OverviewHandler) ExportPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportPDF(actor(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
