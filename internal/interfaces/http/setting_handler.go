package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
)

// SettingHandler configurações do motor de custos (chave-valor tipado).
type SettingHandler struct {
	uc *usecase.CostSettingUseCase
}

// NewSettingHandler constrói o handler.
func NewSettingHandler(uc *usecase.CostSettingUseCase) *SettingHandler {
	return &SettingHandler{uc: uc}
}

// List godoc
// @Summary      Listar configurações
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingListResponse
// @Router       /api/settings [get]
func (h *SettingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// GetByKey godoc
// @Summary      Obter configuração pela chave
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        key  path  string  true  "Chave da configuração"
// @Success      200  {object}  dto.SettingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [get]
func (h *SettingHandler) GetByKey(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "key é obrigatória"})
	}
	out, err := h.uc.GetByKey(c.UserContext(), key)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "configuração não encontrada"})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Criar ou atualizar configuração
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        key   path  string  true  "Chave da configuração"
// @Param        body  body  dto.UpsertSettingRequest  true  "Tipo, valor e descrição"
// @Success      200   {object}  dto.SettingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{key} [put]
func (h *SettingHandler) Upsert(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_KEY", Message: "key é obrigatória"})
	}
	var in dto.UpsertSettingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Upsert(c.UserContext(), key, GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
