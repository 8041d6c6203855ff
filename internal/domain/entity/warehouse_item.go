package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WarehouseItem é um insumo/embalagem estocado no almoxarifado com custo
// unitário corrente. O motor de custos o consome somente como fonte de preço;
// o ciclo de reposição é responsabilidade do módulo de compras.
type WarehouseItem struct {
	ID           string
	Code         string
	Name         string
	Unit         string
	UnitCost     decimal.Decimal
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
