package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// InsightHandler o copiloto de custos: insights por regra e resumo LLM.
type InsightHandler struct {
	insightUC *usecase.InsightUseCase
	reportUC  *usecase.ReportUseCase
}

// NewInsightHandler constrói o handler.
func NewInsightHandler(insightUC *usecase.InsightUseCase, reportUC *usecase.ReportUseCase) *InsightHandler {
	return &InsightHandler{insightUC: insightUC, reportUC: reportUC}
}

// Generate godoc
// @Summary      Insights do período (variação de custo, erosão de margem)
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "Período AAAA-MM"
// @Success      200  {object}  dto.InsightListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/insights [get]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PERIOD", Message: "query param period é obrigatório (AAAA-MM)"})
	}
	out, err := h.insightUC.Generate(c.UserContext(), period)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Summarize godoc
// @Summary      Resumo executivo do período via LLM
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CopilotSummaryRequest  true  "Período AAAA-MM"
// @Success      200   {object}  dto.CopilotSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/insights/summary [post]
func (h *InsightHandler) Summarize(c *fiber.Ctx) error {
	var in dto.CopilotSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	report, err := h.reportUC.PeriodReport(c.UserContext(), in.Period)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.insightUC.Summarize(c.UserContext(), report)
	if err != nil {
		// falha externa do LLM, não do domínio
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "LLM_UNAVAILABLE", Message: "não foi possível gerar o resumo agora"})
	}
	return c.JSON(out)
}
