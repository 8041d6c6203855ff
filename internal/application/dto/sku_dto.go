package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSKURequest entrada para criar um SKU.
type CreateSKURequest struct {
	Code           string          `json:"code" validate:"required,min=1,max=100"`
	Description    string          `json:"description" validate:"required,min=1,max=200"`
	PackageWeight  decimal.Decimal `json:"package_weight"`
	ShelfLifeDays  int             `json:"shelf_life_days" validate:"min=0"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
}

// UpdateSKURequest entrada para atualizar um SKU (campos opcionais).
type UpdateSKURequest struct {
	Description    *string          `json:"description" validate:"omitempty,min=1,max=200"`
	PackageWeight  *decimal.Decimal `json:"package_weight"`
	ShelfLifeDays  *int             `json:"shelf_life_days" validate:"omitempty,min=0"`
	SuggestedPrice *decimal.Decimal `json:"suggested_price"`
	CurrentStock   *decimal.Decimal `json:"current_stock"`
}

// SKUResponse saída de um SKU.
type SKUResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	PackageWeight  decimal.Decimal `json:"package_weight"`
	ShelfLifeDays  int             `json:"shelf_life_days"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SKUListResponse lista paginada de SKUs.
type SKUListResponse struct {
	Items []SKUResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// CreateBOMItemRequest entrada para adicionar uma linha à ficha técnica de um SKU.
type CreateBOMItemRequest struct {
	WarehouseItemID string          `json:"warehouse_item_id" validate:"required"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Unit            string          `json:"unit" validate:"required,min=1,max=20"`
	WastePercent    decimal.Decimal `json:"waste_percent"`
	Optional        bool            `json:"optional"`
}

// BOMItemResponse saída de uma linha de ficha técnica.
type BOMItemResponse struct {
	ID              string          `json:"id"`
	SKUID           string          `json:"sku_id"`
	WarehouseItemID string          `json:"warehouse_item_id"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	Unit            string          `json:"unit"`
	WastePercent    decimal.Decimal `json:"waste_percent"`
	Optional        bool            `json:"optional"`
	CreatedAt       time.Time       `json:"created_at"`
}

// BOMListResponse ficha técnica completa de um SKU.
type BOMListResponse struct {
	SKUID string            `json:"sku_id"`
	Items []BOMItemResponse `json:"items"`
}
