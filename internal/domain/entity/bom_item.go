package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMItem é uma linha da ficha técnica (Bill of Materials) de um SKU:
// um insumo ou embalagem do almoxarifado e a quantidade consumida por unidade
// produzida. Cada linha contribui de forma independente para o custo direto;
// a ordem de inserção é irrelevante.
type BOMItem struct {
	ID              string
	SKUID           string
	WarehouseItemID string
	QuantityPerUnit decimal.Decimal // >= 0
	Unit            string          // kg, un, l, ...
	WastePercent    decimal.Decimal // perda esperada da linha (informativo; o desperdício global é aplicado no composer)
	Optional        bool
	CreatedAt       time.Time
}
