package dto

import "github.com/shopspring/decimal"

// PeriodReportRow uma linha por registro confirmado/fechado do período.
type PeriodReportRow struct {
	SKUID              string          `json:"sku_id"`
	SKUCode            string          `json:"sku_code"`
	SKUDescription     string          `json:"sku_description"`
	QuantityProduced   decimal.Decimal `json:"quantity_produced"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	UnitCost           decimal.Decimal `json:"unit_cost"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`
	Status             string          `json:"status"`
}

// PeriodReportResponse relatório de fechamento de período.
type PeriodReportResponse struct {
	Period              string            `json:"period"`
	RecordCount         int               `json:"record_count"`
	TotalQuantity       decimal.Decimal   `json:"total_quantity"`
	TotalDirectMaterial decimal.Decimal   `json:"total_direct_material"`
	TotalLabor          decimal.Decimal   `json:"total_labor"`
	TotalIndirect       decimal.Decimal   `json:"total_indirect"`
	TotalFreight        decimal.Decimal   `json:"total_freight"`
	TotalTax            decimal.Decimal   `json:"total_tax"`
	TotalWastage        decimal.Decimal   `json:"total_wastage"`
	TotalCost           decimal.Decimal   `json:"total_cost"`
	AvgUnitCost         decimal.Decimal   `json:"avg_unit_cost"`
	AvgMarginPercent    decimal.Decimal   `json:"avg_margin_percent"`
	Rows                []PeriodReportRow `json:"rows"`
}
