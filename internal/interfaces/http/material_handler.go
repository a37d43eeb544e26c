package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

const materialNotFound = "insumo no encontrado"

// MaterialHandler CRUD de insumos.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// List godoc
// @Summary      Listar insumos
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, materialNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear insumo
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MaterialRequest  true  "Insumo"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.MaterialRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, materialNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener insumo
// @Tags         materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), salonID, c.Params("id"))
	if err != nil {
		return fail(c, err, materialNotFound)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: materialNotFound})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar insumo
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.MaterialRequest  true  "Insumo"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.MaterialRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), salonID, c.Params("id"), in)
	if err != nil {
		return fail(c, err, materialNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar insumo
// @Description  409 si algún servicio todavía lo usa.
// @Tags         materials
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), salonID, c.Params("id")); err != nil {
		return fail(c, err, materialNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
