package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDestinationRequest entrada para criar um destino de entrega.
type CreateDestinationRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	FreightType    string          `json:"freight_type" validate:"required,oneof=fixed formula"`
	FreightValue   decimal.Decimal `json:"freight_value"`
	FreightFormula string          `json:"freight_formula"`
	ICMSPercent    decimal.Decimal `json:"icms_percent"`
	ICMSSTPercent  decimal.Decimal `json:"icms_st_percent"`
	PISPercent     decimal.Decimal `json:"pis_percent"`
	COFINSPercent  decimal.Decimal `json:"cofins_percent"`
	IPIPercent     decimal.Decimal `json:"ipi_percent"`
	Active         bool            `json:"active"`
}

// UpdateDestinationRequest entrada para atualizar um destino.
type UpdateDestinationRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	FreightType    *string          `json:"freight_type" validate:"omitempty,oneof=fixed formula"`
	FreightValue   *decimal.Decimal `json:"freight_value"`
	FreightFormula *string          `json:"freight_formula"`
	ICMSPercent    *decimal.Decimal `json:"icms_percent"`
	ICMSSTPercent  *decimal.Decimal `json:"icms_st_percent"`
	PISPercent     *decimal.Decimal `json:"pis_percent"`
	COFINSPercent  *decimal.Decimal `json:"cofins_percent"`
	IPIPercent     *decimal.Decimal `json:"ipi_percent"`
	Active         *bool            `json:"active"`
}

// DestinationResponse saída de um destino de entrega.
type DestinationResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	FreightType    string          `json:"freight_type"`
	FreightValue   decimal.Decimal `json:"freight_value"`
	FreightFormula string          `json:"freight_formula,omitempty"`
	ICMSPercent    decimal.Decimal `json:"icms_percent"`
	ICMSSTPercent  decimal.Decimal `json:"icms_st_percent"`
	PISPercent     decimal.Decimal `json:"pis_percent"`
	COFINSPercent  decimal.Decimal `json:"cofins_percent"`
	IPIPercent     decimal.Decimal `json:"ipi_percent"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// DestinationListResponse lista paginada de destinos.
type DestinationListResponse struct {
	Items []DestinationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
