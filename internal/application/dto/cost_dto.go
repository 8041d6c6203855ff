package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma linha do detalhamento: computada normalmente ou pulada por
// problema de dados (item de almoxarifado inexistente).
const (
	LineStatusComputed = "computed"
	LineStatusSkipped  = "skipped"
)

// CalculateCostRequest entrada do motor de custos (POST /api/costs/calculate).
// SellingPrice ausente cai para o preço sugerido do SKU; SaveRecord ausente
// vale true.
type CalculateCostRequest struct {
	SKUID            string           `json:"sku_id" validate:"required"`
	Period           string           `json:"period" validate:"required,datetime=2006-01"`
	QuantityProduced decimal.Decimal  `json:"quantity_produced"`
	DestinationID    string           `json:"destination_id"`
	WastagePercent   decimal.Decimal  `json:"wastage_percent"`
	SellingPrice     *decimal.Decimal `json:"selling_price"`
	Observations     string           `json:"observations"`
	SaveRecord       *bool            `json:"save_record"`
}

// MaterialLineDetail uma linha de material direto do detalhamento.
type MaterialLineDetail struct {
	BOMItemID       string          `json:"bom_item_id"`
	ItemID          string          `json:"item_id"`
	ItemCode        string          `json:"item_code,omitempty"`
	ItemName        string          `json:"item_name,omitempty"`
	QuantityPerUnit decimal.Decimal `json:"quantity_per_unit"`
	TotalQuantity   decimal.Decimal `json:"total_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	LineTotal       decimal.Decimal `json:"line_total"`
	Status          string          `json:"status"` // computed | skipped
	Reason          string          `json:"reason,omitempty"`
}

// LaborLineDetail custo carregado de um funcionário no pool de mão de obra.
type LaborLineDetail struct {
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Sector     string          `json:"sector"`
	Position   string          `json:"position"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// IndirectLineDetail um lançamento do razão de custos indiretos do período.
type IndirectLineDetail struct {
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Value       decimal.Decimal `json:"value"`
}

// FreightDetail resultado da estimativa de frete. Degraded=true quando a
// fórmula era inválida e o frete caiu para zero.
type FreightDetail struct {
	DestinationID   string          `json:"destination_id"`
	DestinationName string          `json:"destination_name"`
	FreightType     string          `json:"freight_type"`
	Formula         string          `json:"formula,omitempty"`
	EstimatedWeight decimal.Decimal `json:"estimated_weight"`
	EstimatedValue  decimal.Decimal `json:"estimated_value"`
	Value           decimal.Decimal `json:"value"`
	Degraded        bool            `json:"degraded,omitempty"`
	Reason          string          `json:"reason,omitempty"`
}

// TaxDetail impostos estimados sobre o valor estimado da remessa.
type TaxDetail struct {
	ICMS   decimal.Decimal `json:"icms"`
	ICMSST decimal.Decimal `json:"icms_st"`
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	IPI    decimal.Decimal `json:"ipi"`
	Total  decimal.Decimal `json:"total"`
}

// VarianceDetail comparação contra o último registro confirmado do SKU.
type VarianceDetail struct {
	PreviousUnitCost decimal.Decimal `json:"previous_unit_cost"`
	CurrentUnitCost  decimal.Decimal `json:"current_unit_cost"`
	VariationPercent decimal.Decimal `json:"variation_percent"`
	Threshold        decimal.Decimal `json:"threshold"`
	Direction        string          `json:"direction"`
	AlertGenerated   bool            `json:"alert_generated"`
	AlertID          string          `json:"alert_id,omitempty"`
}

// CostRecordDetail o blob serializado no registro: o detalhamento completo
// por categoria.
type CostRecordDetail struct {
	DirectMaterial []MaterialLineDetail `json:"direct_material"`
	Labor          []LaborLineDetail    `json:"labor"`
	Indirect       []IndirectLineDetail `json:"indirect"`
	Freight        *FreightDetail       `json:"freight,omitempty"`
	Taxes          *TaxDetail           `json:"taxes,omitempty"`
}

// CalculateCostResponse saída completa de uma execução do motor.
type CalculateCostResponse struct {
	SKUID            string          `json:"sku_id"`
	Period           string          `json:"period"`
	QuantityProduced decimal.Decimal `json:"quantity_produced"`

	DirectMaterialLines []MaterialLineDetail `json:"direct_material_lines"`
	DirectMaterialCost  decimal.Decimal      `json:"direct_material_cost"`
	LaborLines          []LaborLineDetail    `json:"labor_lines"`
	LaborCost           decimal.Decimal      `json:"labor_cost"`
	IndirectLines       []IndirectLineDetail `json:"indirect_lines"`
	IndirectCost        decimal.Decimal      `json:"indirect_cost"`
	Freight             *FreightDetail       `json:"freight,omitempty"`
	FreightCost         decimal.Decimal      `json:"freight_cost"`
	Taxes               *TaxDetail           `json:"taxes,omitempty"`
	TaxCost             decimal.Decimal      `json:"tax_cost"`

	WastagePercent decimal.Decimal `json:"wastage_percent"`
	WastageValue   decimal.Decimal `json:"wastage_value"`

	TotalCost decimal.Decimal `json:"total_cost"`
	UnitCost  decimal.Decimal `json:"unit_cost"`

	SellingPrice       decimal.Decimal `json:"selling_price"`
	GrossMargin        decimal.Decimal `json:"gross_margin"`
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`

	Variance *VarianceDetail `json:"variance,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`

	RecordID     string `json:"record_id,omitempty"`
	RecordStatus string `json:"record_status,omitempty"`
}

// CostRecordResponse saída de um registro de custo persistido.
type CostRecordResponse struct {
	ID                 string            `json:"id"`
	SKUID              string            `json:"sku_id"`
	Period             string            `json:"period"`
	QuantityProduced   decimal.Decimal   `json:"quantity_produced"`
	DirectMaterialCost decimal.Decimal   `json:"direct_material_cost"`
	LaborCost          decimal.Decimal   `json:"labor_cost"`
	IndirectCost       decimal.Decimal   `json:"indirect_cost"`
	FreightCost        decimal.Decimal   `json:"freight_cost"`
	TaxCost            decimal.Decimal   `json:"tax_cost"`
	WastagePercent     decimal.Decimal   `json:"wastage_percent"`
	WastageValue       decimal.Decimal   `json:"wastage_value"`
	TotalCost          decimal.Decimal   `json:"total_cost"`
	UnitCost           decimal.Decimal   `json:"unit_cost"`
	SellingPrice       decimal.Decimal   `json:"selling_price"`
	GrossMargin        decimal.Decimal   `json:"gross_margin"`
	GrossMarginPercent decimal.Decimal   `json:"gross_margin_percent"`
	Detail             *CostRecordDetail `json:"detail,omitempty"`
	Observations       string            `json:"observations,omitempty"`
	Status             string            `json:"status"`
	CreatedBy          string            `json:"created_by"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// CostRecordListResponse lista paginada de registros.
type CostRecordListResponse struct {
	Items []CostRecordResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// UpdateRecordStatusRequest entrada da transição de status do registro.
type UpdateRecordStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed closed"`
}
