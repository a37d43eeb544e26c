package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

// TierHandler tabla de patentes y progreso.
type TierHandler struct {
	uc *usecase.TierUseCase
}

// NewTierHandler construye el handler.
func NewTierHandler(uc *usecase.TierUseCase) *TierHandler {
	return &TierHandler{uc: uc}
}

// List godoc
// @Summary      Tabla de patentes
// @Tags         tiers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TierTableResponse
// @Router       /api/tiers [get]
func (h *TierHandler) List(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "patentes no encontradas")
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar tabla de patentes
// @Tags         tiers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TierTableRequest  true  "Patentes"
// @Success      200   {object}  dto.TierTableResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/tiers [put]
func (h *TierHandler) Replace(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.TierTableRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Replace(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, "patentes no encontradas")
	}
	return c.JSON(out)
}

// Progress godoc
// @Summary      Patente actual y progreso hacia la siguiente
// @Tags         tiers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TierProgressDTO
// @Router       /api/tiers/progress [get]
func (h *TierHandler) Progress(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.Progress(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "patentes no encontradas")
	}
	return c.JSON(out)
}
