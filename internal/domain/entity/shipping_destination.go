package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de regra de frete de um destino.
const (
	FreightTypeFixed   = "fixed"   // valor fixo por remessa
	FreightTypeFormula = "formula" // expressão aritmética sobre peso/valor
)

// ShippingDestination é uma região de entrega com regra de frete e alíquotas
// fixas de impostos. A fórmula de frete referencia as variáveis peso/weight e
// valor/value e é avaliada pelo parser restrito de costing (nunca eval dinâmico).
type ShippingDestination struct {
	ID             string
	Name           string
	FreightType    string // FreightTypeFixed | FreightTypeFormula
	FreightValue   decimal.Decimal
	FreightFormula string

	ICMSPercent   decimal.Decimal
	ICMSSTPercent decimal.Decimal
	PISPercent    decimal.Decimal
	COFINSPercent decimal.Decimal
	IPIPercent    decimal.Decimal

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
