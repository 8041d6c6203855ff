package http

import (
	"github.com/gofiber/fiber/v2"

	appcosting "github.com/agrococo/custos-api/internal/application/costing"
	"github.com/agrococo/custos-api/internal/application/dto"
)

// CostHandler o motor de cálculo de custos.
type CostHandler struct {
	uc *appcosting.CalculateUseCase
}

// NewCostHandler constrói o handler.
func NewCostHandler(uc *appcosting.CalculateUseCase) *CostHandler {
	return &CostHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular custo de produção de um SKU
// @Description  Roda o pipeline completo: material direto, mão de obra,
// @Description  indiretos, frete, impostos, quebra e variação. Por padrão
// @Description  persiste o resultado como registro draft.
// @Tags         costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateCostRequest  true  "Parâmetros do cálculo"
// @Success      200   {object}  dto.CalculateCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/costs/calculate [post]
func (h *CostHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Execute(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
