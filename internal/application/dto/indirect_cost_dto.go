package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIndirectCostRequest entrada para lançar um custo indireto no razão mensal.
type CreateIndirectCostRequest struct {
	Period      string          `json:"period" validate:"required,datetime=2006-01"`
	Category    string          `json:"category" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
}

// IndirectCostResponse saída de um lançamento.
type IndirectCostResponse struct {
	ID          string          `json:"id"`
	Period      string          `json:"period"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Value       decimal.Decimal `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
}

// IndirectCostListResponse lançamentos de um período com o total somado.
type IndirectCostListResponse struct {
	Period string                 `json:"period"`
	Items  []IndirectCostResponse `json:"items"`
	Total  decimal.Decimal        `json:"total"`
}
