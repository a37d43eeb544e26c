package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

// SettingsHandler configuración del negocio, calendario y meta.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración del salón
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.Get(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "configuración no encontrada")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar configuración, días laborables y feriados
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsRequest  true  "Configuración"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.SettingsRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, "configuración no encontrada")
	}
	return c.JSON(out)
}

// GetGoal godoc
// @Summary      Meta mensual
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GoalResponse
// @Router       /api/goals [get]
func (h *SettingsHandler) GetGoal(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetGoal(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "meta no encontrada")
	}
	return c.JSON(out)
}

// UpdateGoal godoc
// @Summary      Guardar meta mensual
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GoalRequest  true  "Meta"
// @Success      200   {object}  dto.GoalResponse
// @Router       /api/goals [put]
func (h *SettingsHandler) UpdateGoal(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.GoalRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateGoal(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, "meta no encontrada")
	}
	return c.JSON(out)
}
