package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// IndirectCostHandler lançamentos de custos indiretos por período.
type IndirectCostHandler struct {
	uc *usecase.IndirectCostUseCase
}

// NewIndirectCostHandler constrói o handler.
func NewIndirectCostHandler(uc *usecase.IndirectCostUseCase) *IndirectCostHandler {
	return &IndirectCostHandler{uc: uc}
}

// Create godoc
// @Summary      Lançar custo indireto
// @Tags         indirect-costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndirectCostRequest  true  "Lançamento (categoria, valor, período)"
// @Success      201   {object}  dto.IndirectCostResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/indirect-costs [post]
func (h *IndirectCostHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndirectCostRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByPeriod godoc
// @Summary      Listar custos indiretos de um período
// @Tags         indirect-costs
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  true  "Período AAAA-MM"
// @Success      200  {object}  dto.IndirectCostListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/indirect-costs [get]
func (h *IndirectCostHandler) ListByPeriod(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_PERIOD", Message: "query param period é obrigatório (AAAA-MM)"})
	}
	out, err := h.uc.ListByPeriod(c.UserContext(), period)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir lançamento
// @Tags         indirect-costs
// @Security     Bearer
// @Param        id  path  string  true  "ID do lançamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/indirect-costs/{id} [delete]
func (h *IndirectCostHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
