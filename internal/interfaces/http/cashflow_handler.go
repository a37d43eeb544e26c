package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
	"github.com/jhoicas/salon-finance-api/internal/domain"
)

const cashFlowNotFound = "lançamento no encontrado"

// CashFlowHandler libro de caja.
type CashFlowHandler struct {
	uc *usecase.CashFlowUseCase
}

// NewCashFlowHandler construye el handler.
func NewCashFlowHandler(uc *usecase.CashFlowUseCase) *CashFlowHandler {
	return &CashFlowHandler{uc: uc}
}

// Statement godoc
// @Summary      Extracto con saldo acumulado
// @Tags         cashflow
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200   {object}  dto.CashFlowStatementDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cashflow [get]
func (h *CashFlowHandler) Statement(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var q dto.CashFlowQuery
	if ok, err := queryAndValidate(c, &q); !ok {
		return err
	}
	out, err := h.uc.Statement(c.UserContext(), salonID, q)
	if err != nil {
		return fail(c, err, cashFlowNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar lançamento
// @Tags         cashflow
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CashFlowEntryRequest  true  "Lançamento"
// @Success      201   {object}  dto.CashFlowLineDTO
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cashflow [post]
func (h *CashFlowHandler) Create(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var in dto.CashFlowEntryRequest
	if ok, err := bindAndValidate(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), salonID, in)
	if err != nil {
		return fail(c, err, cashFlowNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Los lançamentos no se editan
// @Description  Siempre 409: para corregir se elimina y se registra de nuevo.
// @Tags         cashflow
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cashflow/{id} [put]
func (h *CashFlowHandler) Update(c *fiber.Ctx) error {
	return fail(c, domain.ErrImmutableEntry, cashFlowNotFound)
}

// Delete godoc
// @Summary      Eliminar lançamento
// @Tags         cashflow
// @Security     Bearer
// @Param        id   path  string  true  "ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cashflow/{id} [delete]
func (h *CashFlowHandler) Delete(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), salonID, c.Params("id")); err != nil {
		return fail(c, err, cashFlowNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
