package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// PeriodCostSummary totais agregados dos registros confirmados/fechados de um
// período, para o relatório de fechamento.
type PeriodCostSummary struct {
	Period              string
	RecordCount         int
	TotalQuantity       decimal.Decimal
	TotalDirectMaterial decimal.Decimal
	TotalLabor          decimal.Decimal
	TotalIndirect       decimal.Decimal
	TotalFreight        decimal.Decimal
	TotalTax            decimal.Decimal
	TotalWastage        decimal.Decimal
	TotalCost           decimal.Decimal
	AvgUnitCost         decimal.Decimal
	AvgMarginPercent    decimal.Decimal
}

// PeriodSKURow uma linha por SKU no relatório de fechamento.
type PeriodSKURow struct {
	SKUID              string
	SKUCode            string
	SKUDescription     string
	QuantityProduced   decimal.Decimal
	TotalCost          decimal.Decimal
	UnitCost           decimal.Decimal
	GrossMarginPercent decimal.Decimal
	Status             string
}

// ReportRepository porto de consultas read-only para relatórios.
// Consome cost_records como fonte; nunca escreve.
type ReportRepository interface {
	GetPeriodSummary(ctx context.Context, period string) (*PeriodCostSummary, error)
	GetPeriodSKUBreakdown(ctx context.Context, period string) ([]PeriodSKURow, error)
}
