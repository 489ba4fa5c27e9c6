package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Joyeria-api/internal/application/dto"
	"github.com/jhoicas/Joyeria-api/internal/application/prices"
	"github.com/jhoicas/Joyeria-api/internal/domain"
)

// PriceHandler maneja las peticiones HTTP del libro de cotizaciones.
type PriceHandler struct {
	uc *prices.LedgerUseCase
}

// NewPriceHandler construye el handler.
func NewPriceHandler(uc *prices.LedgerUseCase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// GetCurrent godoc
// @Summary      Cotización vigente
// @Description  Devuelve null cuando nunca se registró una cotización.
// @Tags         prices
// @Produce      json
// @Success      200  {object}  dto.PriceSnapshotResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/prices [get]
func (h *PriceHandler) GetCurrent(c *fiber.Ctx) error {
	out, err := h.uc.GetCurrent()
	if err != nil {
		log.Error().Err(err).Msg("consultar cotización vigente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando cotizaciones"})
	}
	// out en nil serializa como null, el contrato para "nunca escrito".
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cotizaciones
// @Description  Escritura parcial: el metal ausente conserva su valor vigente.
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePricesRequest  true  "Cotizaciones nuevas"
// @Success      200   {object}  dto.PriceSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prices [put]
func (h *PriceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		log.Error().Err(err).Msg("actualizar cotizaciones")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error guardando cotizaciones"})
	}
	return c.JSON(out)
}

// UpdateGold godoc
// @Summary      Actualizar solo la cotización del oro
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePricesRequest  true  "gold_price requerido"
// @Success      200   {object}  dto.PriceSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prices/gold [put]
func (h *PriceHandler) UpdateGold(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateGold(c.Context(), in.GoldPrice)
	if err != nil {
		if errors.Is(err, domain.ErrMissingGoldPrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "gold_price es requerido"})
		}
		log.Error().Err(err).Msg("actualizar cotización del oro")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error guardando cotizaciones"})
	}
	return c.JSON(out)
}

// UpdateSilver godoc
// @Summary      Actualizar solo la cotización de la plata
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePricesRequest  true  "silver_price requerido"
// @Success      200   {object}  dto.PriceSnapshotResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/prices/silver [put]
func (h *PriceHandler) UpdateSilver(c *fiber.Ctx) error {
	var in dto.UpdatePricesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateSilver(c.Context(), in.SilverPrice)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSilverPrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "silver_price es requerido"})
		}
		log.Error().Err(err).Msg("actualizar cotización de la plata")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error guardando cotizaciones"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de cotizaciones
// @Description  Todos los cambios registrados, del más reciente al más antiguo.
// @Tags         prices
// @Produce      json
// @Success      200  {array}   dto.PriceChangeResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/price-history [get]
func (h *PriceHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.GetHistory()
	if err != nil {
		log.Error().Err(err).Msg("consultar historial de cotizaciones")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error consultando el historial"})
	}
	return c.JSON(out)
}
