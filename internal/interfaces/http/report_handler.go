package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/application/reports"
)

// ReportHandler maneja la generación de reportes PDF.
type ReportHandler struct {
	valuation *reports.ValuationUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(valuation *reports.ValuationUseCase) *ReportHandler {
	return &ReportHandler{valuation: valuation}
}

// StockValuation godoc
// @Summary      Reporte de valorización del stock activo
// @Description  PDF con cada pieza activa y los gramos por metal valorados a la cotización vigente.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock-valuation [get]
func (h *ReportHandler) StockValuation(c *fiber.Ctx) error {
	pdfBytes, err := h.valuation.Generate(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("generar reporte de valorización")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error generando el reporte"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="valorizacion-stock.pdf"`)
	return c.Send(pdfBytes)
}
