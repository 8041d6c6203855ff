package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// AlertHandler alertas de variação de custo.
type AlertHandler struct {
	uc *usecase.CostAlertUseCase
}

// NewAlertHandler constrói o handler.
func NewAlertHandler(uc *usecase.CostAlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de variação
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        sku_id  query  string  false  "Filtro por SKU"
// @Param        status  query  string  false  "Filtro por status (new|viewed|resolved|ignored)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CostAlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("sku_id"), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Atualizar status de resolução do alerta
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do alerta"
// @Param        body  body  dto.UpdateAlertStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.CostAlertResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/status [patch]
func (h *AlertHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateAlertStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
