package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// WarehouseItemUseCase casos de uso CRUD para itens de almoxarifado (fonte de
// preço do material direto).
type WarehouseItemUseCase struct {
	repo repository.WarehouseItemRepository
}

// NewWarehouseItemUseCase constrói o caso de uso.
func NewWarehouseItemUseCase(repo repository.WarehouseItemRepository) *WarehouseItemUseCase {
	return &WarehouseItemUseCase{repo: repo}
}

// Create cria um novo item.
func (uc *WarehouseItemUseCase) Create(ctx context.Context, in dto.CreateWarehouseItemRequest) (*dto.WarehouseItemResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.WarehouseItem{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Unit:         in.Unit,
		UnitCost:     in.UnitCost,
		CurrentStock: in.CurrentStock,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toWarehouseItemResponse(item), nil
}

// GetByID obtém um item por ID.
func (uc *WarehouseItemUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toWarehouseItemResponse(item), nil
}

// Update atualiza um item (campos opcionais).
func (uc *WarehouseItemUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseItemRequest) (*dto.WarehouseItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.UnitCost != nil {
		if in.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.UnitCost = *in.UnitCost
	}
	if in.CurrentStock != nil {
		item.CurrentStock = *in.CurrentStock
	}
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toWarehouseItemResponse(item), nil
}

// List lista itens com paginação.
func (uc *WarehouseItemUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.WarehouseItemListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseItemResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseItemResponse(w))
	}
	return &dto.WarehouseItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina um item por ID.
func (uc *WarehouseItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toWarehouseItemResponse(w *entity.WarehouseItem) *dto.WarehouseItemResponse {
	return &dto.WarehouseItemResponse{
		ID:           w.ID,
		Code:         w.Code,
		Name:         w.Name,
		Unit:         w.Unit,
		UnitCost:     w.UnitCost,
		CurrentStock: w.CurrentStock,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}
