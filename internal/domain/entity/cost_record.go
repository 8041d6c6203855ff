package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Status de ciclo de vida de um registro de custo. Transições são append-only:
// draft → confirmed → closed. Um registro closed não pode ser excluído.
const (
	CostRecordStatusDraft     = "draft"
	CostRecordStatusConfirmed = "confirmed"
	CostRecordStatusClosed    = "closed"
)

// CostRecord é a saída imutável de uma execução do motor de custos: período,
// SKU, quantidade produzida, totais por categoria, o detalhamento serializado
// de cada categoria e a economia unitária resultante.
type CostRecord struct {
	ID               string
	SKUID            string
	Period           string // AAAA-MM
	QuantityProduced decimal.Decimal

	DirectMaterialCost decimal.Decimal
	LaborCost          decimal.Decimal
	IndirectCost       decimal.Decimal
	FreightCost        decimal.Decimal
	TaxCost            decimal.Decimal

	WastagePercent decimal.Decimal
	WastageValue   decimal.Decimal

	TotalCost decimal.Decimal
	UnitCost  decimal.Decimal

	SellingPrice       decimal.Decimal
	GrossMargin        decimal.Decimal
	GrossMarginPercent decimal.Decimal

	Detail       json.RawMessage // breakdown por linha de cada categoria
	Observations string
	Status       string // draft | confirmed | closed

	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo valida a transição de status append-only.
func (r *CostRecord) CanTransitionTo(status string) bool {
	switch r.Status {
	case CostRecordStatusDraft:
		return status == CostRecordStatusConfirmed
	case CostRecordStatusConfirmed:
		return status == CostRecordStatusClosed
	default:
		return false
	}
}
