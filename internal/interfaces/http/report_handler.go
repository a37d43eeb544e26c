package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/salon-finance-api/internal/application/dto"
	"github.com/jhoicas/salon-finance-api/internal/application/usecase"
)

// ReportHandler resúmenes financieros.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero del mes
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        month  query  int  false  "Mes (1-12), por defecto el actual"
// @Param        year   query  int  false  "Año, por defecto el actual"
// @Success      200    {object}  dto.PeriodSummaryDTO
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var q dto.PeriodRequest
	if ok, err := queryAndValidate(c, &q); !ok {
		return err
	}
	out, err := h.uc.MonthlySummary(c.UserContext(), salonID, q)
	if err != nil {
		return fail(c, err, "salón no encontrado")
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Resumen financiero del mes en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        month  query  int  false  "Mes (1-12)"
// @Param        year   query  int  false  "Año"
// @Success      200    {file}    file
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/reports/summary/pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	var q dto.PeriodRequest
	if ok, err := queryAndValidate(c, &q); !ok {
		return err
	}
	pdf, filename, err := h.uc.MonthlySummaryPDF(c.UserContext(), salonID, q)
	if err != nil {
		return fail(c, err, "salón no encontrado")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Year godoc
// @Summary      Resumen de los doce meses del año
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  false  "Año, por defecto el actual"
// @Success      200   {object}  dto.YearSummaryDTO
// @Router       /api/reports/year [get]
func (h *ReportHandler) Year(c *fiber.Ctx) error {
	salonID, ok, err := requireSalon(c)
	if !ok {
		return err
	}
	year := c.QueryInt("year", 0)
	if year != 0 && (year < 2000 || year > 2100) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_YEAR", Message: "year fuera de rango"})
	}
	out, err := h.uc.YearSummary(c.UserContext(), salonID, year)
	if err != nil {
		return fail(c, err, "salón no encontrado")
	}
	return c.JSON(out)
}
