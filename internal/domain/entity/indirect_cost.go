package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IndirectCost é um lançamento do razão de custos indiretos de um período
// (energia, manutenção, limpeza, depreciação...). Pode haver vários
// lançamentos por período/categoria; o motor soma todos sem rateio por SKU.
type IndirectCost struct {
	ID          string
	Period      string // AAAA-MM
	Category    string
	Description string
	Value       decimal.Decimal
	CreatedAt   time.Time
}
