package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// SKURepository define o porto de persistência para SKU (DIP).
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByID(ctx context.Context, id string) (*entity.SKU, error)
	GetByCode(ctx context.Context, code string) (*entity.SKU, error)
	Update(ctx context.Context, sku *entity.SKU) error
	List(ctx context.Context, limit, offset int) ([]*entity.SKU, error)
	Delete(ctx context.Context, id string) error
}

// BOMItemRepository define o porto de persistência para as linhas de ficha
// técnica de um SKU.
type BOMItemRepository interface {
	Create(ctx context.Context, item *entity.BOMItem) error
	GetByID(ctx context.Context, id string) (*entity.BOMItem, error)
	ListBySKU(ctx context.Context, skuID string) ([]*entity.BOMItem, error)
	Delete(ctx context.Context, id string) error
}
