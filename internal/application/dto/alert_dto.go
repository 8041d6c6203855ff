package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostAlertResponse saída de um alerta de variação de custo.
type CostAlertResponse struct {
	ID               string          `json:"id"`
	CostRecordID     string          `json:"cost_record_id"`
	SKUID            string          `json:"sku_id"`
	PreviousUnitCost decimal.Decimal `json:"previous_unit_cost"`
	CurrentUnitCost  decimal.Decimal `json:"current_unit_cost"`
	VariationPercent decimal.Decimal `json:"variation_percent"`
	Threshold        decimal.Decimal `json:"threshold"`
	Direction        string          `json:"direction"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CostAlertListResponse lista paginada de alertas.
type CostAlertListResponse struct {
	Items []CostAlertResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// UpdateAlertStatusRequest entrada da mudança de status de resolução.
type UpdateAlertStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new viewed resolved ignored"`
}
