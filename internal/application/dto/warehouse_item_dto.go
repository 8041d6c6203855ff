package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateWarehouseItemRequest entrada para criar um item de almoxarifado.
type CreateWarehouseItemRequest struct {
	Code         string          `json:"code" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Unit         string          `json:"unit" validate:"required,min=1,max=20"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// UpdateWarehouseItemRequest entrada para atualizar um item (campos opcionais).
type UpdateWarehouseItemRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit         *string          `json:"unit" validate:"omitempty,min=1,max=20"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	CurrentStock *decimal.Decimal `json:"current_stock"`
}

// WarehouseItemResponse saída de um item de almoxarifado.
type WarehouseItemResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WarehouseItemListResponse lista paginada de itens.
type WarehouseItemListResponse struct {
	Items []WarehouseItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
