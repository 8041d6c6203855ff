package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SKU representa um produto acabado vendável (coco ralado, leite de coco, etc.).
// PackageWeight em kg por unidade; SuggestedPrice é o fallback de preço de venda
// quando o cálculo de custo não recebe um preço explícito.
type SKU struct {
	ID             string
	Code           string // código único
	Description    string
	PackageWeight  decimal.Decimal // kg por unidade produzida
	ShelfLifeDays  int
	SuggestedPrice decimal.Decimal
	CurrentStock   decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
