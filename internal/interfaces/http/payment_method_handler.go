package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

const paymentMethodNotFound = "forma de pago no encontrada"

// PaymentMethodHandler CRUD de formas de pago (protegido).
type PaymentMethodHandler struct {
	uc *usecase.PaymentMethodUseCase
}

// NewPaymentMethodHandler construye el handler.
func NewPaymentMethodHandler(uc *usecase.PaymentMethodUseCase) *PaymentMethodHandler {
	return &PaymentMethodHandler{uc: uc}
}

// List godoc
// @Summary      Listar formas de pago con tasa ponderada
// @Tags         payment-methods
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PaymentMethodListResponse
// @Router       /api/payment-methods [get]
func (h *PaymentMethodHandler) List(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), salonID)
	if err != nil {
		return fail(c, err, paymentMethodNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear forma de pago
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentMethodRequest  true  "Forma de pago"
// @Success      201   {object}  dto.PaymentMethodResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payment-methods [post]
func (h *PaymentMethodHandler) Create(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.PaymentMethodRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, paymentMethodNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar forma de pago
// @Tags         payment-methods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID"
// @Param        body  body  dto.PaymentMethodRequest  true  "Forma de pago"
// @Success      200   {object}  dto.PaymentMethodResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [put]
func (h *PaymentMethodHandler) Update(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.PaymentMethodRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), salonID, c.Params("id"), in)
	if err != nil {
		return fail(c, err, paymentMethodNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar forma de pago
// @Tags         payment-methods
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payment-methods/{id} [delete]
func (h *PaymentMethodHandler) Delete(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), salonID, c.Params("id")); err != nil {
		return fail(c, err, paymentMethodNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
