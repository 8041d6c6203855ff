package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/usecase"
)

// ReportHandler fechamento de período em JSON e PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Period godoc
// @Summary      Fechamento de custos do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  path  string  true  "Período AAAA-MM"
// @Success      200  {object}  dto.PeriodReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/period/{period} [get]
func (h *ReportHandler) Period(c *fiber.Ctx) error {
	out, err := h.uc.PeriodReport(c.UserContext(), c.Params("period"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// PeriodPDF godoc
// @Summary      Fechamento do período em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  path  string  true  "Período AAAA-MM"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/period/{period}/pdf [get]
func (h *ReportHandler) PeriodPDF(c *fiber.Ctx) error {
	period := c.Params("period")
	pdf, err := h.uc.PeriodReportPDF(c.UserContext(), period)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="fechamento-%s.pdf"`, period))
	return c.Send(pdf)
}
