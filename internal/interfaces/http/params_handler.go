package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

// ParamsHandler expone el snapshot BusinessParams vigente.
type ParamsHandler struct {
	uc *usecase.ParamsUseCase
}

// NewParamsHandler construye el handler.
func NewParamsHandler(uc *usecase.ParamsUseCase) *ParamsHandler {
	return &ParamsHandler{uc: uc}
}

// Current godoc
// @Summary      Parámetros derivados del negocio
// @Description  Nunca falla por una fuente caída: el segmento usa el snapshot anterior (ver fallback_segments).
// @Tags         params
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BusinessParamsDTO
// @Router       /api/params [get]
func (h *ParamsHandler) Current(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.Current(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "parámetros no encontrados")
	}
	return c.JSON(out)
}
