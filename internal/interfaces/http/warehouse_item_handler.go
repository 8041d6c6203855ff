package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// WarehouseItemHandler insumos e embalagens do almoxarifado.
type WarehouseItemHandler struct {
	uc *usecase.WarehouseItemUseCase
}

// NewWarehouseItemHandler constrói o handler.
func NewWarehouseItemHandler(uc *usecase.WarehouseItemUseCase) *WarehouseItemHandler {
	return &WarehouseItemHandler{uc: uc}
}

// Create godoc
// @Summary      Criar item de almoxarifado
// @Tags         warehouse-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarehouseItemRequest  true  "Dados do item"
// @Success      201   {object}  dto.WarehouseItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/warehouse-items [post]
func (h *WarehouseItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarehouseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter item por ID
// @Tags         warehouse-items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do item"
// @Success      200  {object}  dto.WarehouseItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-items/{id} [get]
func (h *WarehouseItemHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar itens de almoxarifado
// @Tags         warehouse-items
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.WarehouseItemListResponse
// @Router       /api/warehouse-items [get]
func (h *WarehouseItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar item
// @Tags         warehouse-items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do item"
// @Param        body  body  dto.UpdateWarehouseItemRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.WarehouseItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse-items/{id} [put]
func (h *WarehouseItemHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateWarehouseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir item
// @Tags         warehouse-items
// @Security     Bearer
// @Param        id  path  string  true  "ID do item"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouse-items/{id} [delete]
func (h *WarehouseItemHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
