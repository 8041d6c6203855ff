package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// WarehouseItemRepository define o porto de persistência para itens do
// almoxarifado. O motor de custos usa somente leituras (fonte de preço).
type WarehouseItemRepository interface {
	Create(ctx context.Context, item *entity.WarehouseItem) error
	GetByID(ctx context.Context, id string) (*entity.WarehouseItem, error)
	Update(ctx context.Context, item *entity.WarehouseItem) error
	List(ctx context.Context, limit, offset int) ([]*entity.WarehouseItem, error)
	Delete(ctx context.Context, id string) error
}
