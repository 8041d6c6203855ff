package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// CostRecordHandler ciclo de vida dos registros de custo persistidos.
type CostRecordHandler struct {
	uc *usecase.CostRecordUseCase
}

// NewCostRecordHandler constrói o handler.
func NewCostRecordHandler(uc *usecase.CostRecordUseCase) *CostRecordHandler {
	return &CostRecordHandler{uc: uc}
}

// List godoc
// @Summary      Listar registros de custo
// @Tags         cost-records
// @Security     Bearer
// @Produce      json
// @Param        sku_id  query  string  false  "Filtro por SKU"
// @Param        period  query  string  false  "Filtro por período AAAA-MM"
// @Param        status  query  string  false  "Filtro por status (draft|confirmed|closed)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.CostRecordListResponse
// @Router       /api/cost-records [get]
func (h *CostRecordHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(),
		c.Query("sku_id"), c.Query("period"), c.Query("status"), pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter registro de custo com detalhamento
// @Tags         cost-records
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do registro"
// @Success      200  {object}  dto.CostRecordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cost-records/{id} [get]
func (h *CostRecordHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro não encontrado"})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Transicionar status do registro
// @Description  Transições permitidas: draft → confirmed → closed.
// @Tags         cost-records
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do registro"
// @Param        body  body  dto.UpdateRecordStatusRequest  true  "Novo status"
// @Success      200   {object}  dto.CostRecordResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cost-records/{id}/status [patch]
func (h *CostRecordHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateRecordStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir registro de custo
// @Description  Registros fechados são imutáveis e retornam 409.
// @Tags         cost-records
// @Security     Bearer
// @Param        id  path  string  true  "ID do registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/cost-records/{id} [delete]
func (h *CostRecordHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
