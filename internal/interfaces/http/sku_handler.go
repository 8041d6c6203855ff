package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// SKUHandler catálogo de SKUs acabados e suas fichas técnicas.
type SKUHandler struct {
	uc *usecase.SKUUseCase
}

// NewSKUHandler constrói o handler.
func NewSKUHandler(uc *usecase.SKUUseCase) *SKUHandler {
	return &SKUHandler{uc: uc}
}

// Create godoc
// @Summary      Criar SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSKURequest  true  "Dados do SKU"
// @Success      201   {object}  dto.SKUResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/skus [post]
func (h *SKUHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSKURequest
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
// @Summary      Obter SKU por ID
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do SKU"
// @Success      200  {object}  dto.SKUResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [get]
func (h *SKUHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "SKU não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar SKUs
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.SKUListResponse
// @Router       /api/skus [get]
func (h *SKUHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do SKU"
// @Param        body  body  dto.UpdateSKURequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.SKUResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [put]
func (h *SKUHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateSKURequest
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
// @Summary      Excluir SKU
// @Tags         skus
// @Security     Bearer
// @Param        id  path  string  true  "ID do SKU"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id} [delete]
func (h *SKUHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddBOMItem godoc
// @Summary      Adicionar linha à ficha técnica do SKU
// @Tags         skus
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do SKU"
// @Param        body  body  dto.CreateBOMItemRequest  true  "Linha da ficha técnica"
// @Success      201   {object}  dto.BOMItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/bom [post]
func (h *SKUHandler) AddBOMItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.CreateBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddBOMItem(c.UserContext(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBOM godoc
// @Summary      Listar ficha técnica do SKU
// @Tags         skus
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do SKU"
// @Success      200  {object}  dto.BOMListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/{id}/bom [get]
func (h *SKUHandler) ListBOM(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.ListBOM(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// DeleteBOMItem godoc
// @Summary      Remover linha da ficha técnica
// @Tags         skus
// @Security     Bearer
// @Param        itemId  path  string  true  "ID da linha"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/skus/bom/{itemId} [delete]
func (h *SKUHandler) DeleteBOMItem(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteBOMItem(c.UserContext(), itemID); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
