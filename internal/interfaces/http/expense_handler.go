package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

const expenseNotFound = "despesa no encontrada"

// ExpenseHandler despesas directas e indirectas por mes.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// List godoc
// @Summary      Listar despesas
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        kind  query  string  false  "direta | indireta"
// @Param        year  query  int     false  "Año (0 = todos)"
// @Success      200   {array}  dto.ExpenseResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var q dto.ExpenseQuery
	if ok, err := queryAndValidate(c, &q); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), salonID, q)
	if err != nil {
		return fail(c, err, expenseNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar despesa
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExpenseRequest  true  "Despesa"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.ExpenseRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, expenseNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar despesa
// @Tags         expenses
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), salonID, c.Params("id")); err != nil {
		return fail(c, err, expenseNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
