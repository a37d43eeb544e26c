package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

const serviceNotFound = "servicio no encontrado"

// ServiceHandler catálogo de servicios y cascada de precios.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List godoc
// @Summary      Listar servicios
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceResponse
// @Router       /api/services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear servicio
// @Description  Congela el costo de cada material y calcula costo total y margen con los parámetros vigentes.
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ServiceRequest  true  "Servicio"
// @Success      201   {object}  dto.ServiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/services [post]
func (h *ServiceHandler) Create(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.ServiceRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ServiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [get]
func (h *ServiceHandler) GetByID(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), salonID, c.Params("id"))
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: serviceNotFound})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         services
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.ServiceRequest  true  "Servicio"
// @Success      200   {object}  dto.ServiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/services/{id} [put]
func (h *ServiceHandler) Update(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.ServiceRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), salonID, c.Params("id"), in)
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar servicio
// @Tags         services
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id} [delete]
func (h *ServiceHandler) Delete(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), salonID, c.Params("id")); err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Breakdown godoc
// @Summary      Cascada de costos de un servicio
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.ServiceBreakdownDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/services/{id}/breakdown [get]
func (h *ServiceHandler) Breakdown(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.Breakdown(c.UserContext(), salonID, c.Params("id"))
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.JSON(out)
}

// BreakdownTable godoc
// @Summary      Cascada de costos de todos los servicios
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ServiceBreakdownDTO
// @Router       /api/services/breakdowns [get]
func (h *ServiceHandler) BreakdownTable(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.BreakdownTable(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.JSON(out)
}

// Reprice godoc
// @Summary      Recalcular costos guardados con los parámetros vigentes
// @Tags         services
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RepriceResponse
// @Router       /api/services/reprice [post]
func (h *ServiceHandler) Reprice(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.Reprice(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, serviceNotFound)
	}
	return c.JSON(out)
}
