package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// DestinationHandler destinos de expedição e suas regras de frete.
type DestinationHandler struct {
	uc *usecase.DestinationUseCase
}

// NewDestinationHandler constrói o handler.
func NewDestinationHandler(uc *usecase.DestinationUseCase) *DestinationHandler {
	return &DestinationHandler{uc: uc}
}

// Create godoc
// @Summary      Criar destino de expedição
// @Tags         destinations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDestinationRequest  true  "Destino (fixed ou formula)"
// @Success      201   {object}  dto.DestinationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/destinations [post]
func (h *DestinationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDestinationRequest
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
// @Summary      Obter destino por ID
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID do destino"
// @Success      200  {object}  dto.DestinationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [get]
func (h *DestinationHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "destino não encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar destinos
// @Tags         destinations
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.DestinationListResponse
// @Router       /api/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar destino
// @Tags         destinations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do destino"
// @Param        body  body  dto.UpdateDestinationRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.DestinationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [put]
func (h *DestinationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateDestinationRequest
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
// @Summary      Excluir destino
// @Tags         destinations
// @Security     Bearer
// @Param        id  path  string  true  "ID do destino"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/destinations/{id} [delete]
func (h *DestinationHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
