package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severidade de um insight do copiloto.
const (
	InsightSeverityInfo     = "info"
	InsightSeverityWarning  = "warning"
	InsightSeverityCritical = "critical"
)

// InsightResponse um insight gerado por regra sobre o estado de custos.
type InsightResponse struct {
	Type        string          `json:"type"` // cost_variance | margin_erosion
	Severity    string          `json:"severity"`
	SKUID       string          `json:"sku_id,omitempty"`
	SKUCode     string          `json:"sku_code,omitempty"`
	Message     string          `json:"message"`
	Value       decimal.Decimal `json:"value"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// InsightListResponse insights do período consultado.
type InsightListResponse struct {
	Period string            `json:"period"`
	Items  []InsightResponse `json:"items"`
}

// CopilotSummaryRequest entrada do resumo LLM.
type CopilotSummaryRequest struct {
	Period string `json:"period" validate:"required,datetime=2006-01"`
}

// CopilotSummaryResponse resumo em linguagem natural do estado de custos.
type CopilotSummaryResponse struct {
	Period  string `json:"period"`
	Summary string `json:"summary"`
}
