package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

// SalonHandler alta y consulta del salón (tenant).
type SalonHandler struct {
	uc *usecase.SalonUseCase
}

// NewSalonHandler construye el handler inyectando el caso de uso.
func NewSalonHandler(uc *usecase.SalonUseCase) *SalonHandler {
	return &SalonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear salón
// @Tags         salons
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalonRequest  true  "Datos del salón"
// @Success      201   {object}  dto.SalonResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/salons [post]
func (h *SalonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalonRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "salón no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Me godoc
// @Summary      Salón del usuario autenticado
// @Tags         salons
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SalonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/salons/me [get]
func (h *SalonHandler) Me(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, "salón no encontrado")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salón no encontrado"})
	}
	return c.JSON(out)
}
