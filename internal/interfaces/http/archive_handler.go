package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/application/stock"
	"github.com/jhoicas/Joyeria-api/internal/domain"
)

// ArchiveHandler maneja las peticiones HTTP del archivo de piezas retiradas.
type ArchiveHandler struct {
	uc *stock.ArchiveUseCase
}

// NewArchiveHandler construye el handler.
func NewArchiveHandler(uc *stock.ArchiveUseCase) *ArchiveHandler {
	return &ArchiveHandler{uc: uc}
}

// List godoc
// @Summary      Listar archivo
// @Description  Registros archivados en orden de inserción.
// @Tags         archive
// @Produce      json
// @Success      200  {array}   dto.ArchiveEntryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/archive [get]
func (h *ArchiveHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		log.Error().Err(err).Msg("listar archivo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando el archivo"})
	}
	return c.JSON(out)
}

// Append godoc
// @Summary      Archivar copia de una pieza retirada
// @Description  Inserta incondicionalmente; nunca actualiza ni deduplica.
// @Tags         archive
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendArchiveRequest  true  "Copia de la pieza"
// @Success      201   {object}  dto.ArchiveEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/archive [post]
func (h *ArchiveHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendArchiveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Append(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "itemName, productGivenTo y author son requeridos y weight debe ser positivo"})
		}
		log.Error().Err(err).Msg("archivar pieza")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error guardando el registro"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
