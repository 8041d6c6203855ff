package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direção da variação de custo unitário.
const (
	AlertDirectionIncrease = "increase"
	AlertDirectionDecrease = "decrease"
)

// Status de resolução de um alerta.
const (
	AlertStatusNew      = "new"
	AlertStatusViewed   = "viewed"
	AlertStatusResolved = "resolved"
	AlertStatusIgnored  = "ignored"
)

// CostAlert é gerado quando o custo unitário recém-calculado de um SKU desvia
// do último registro confirmado além do threshold configurado. É um aviso
// consultivo, não autoritativo.
type CostAlert struct {
	ID           string
	CostRecordID string
	SKUID        string

	PreviousUnitCost decimal.Decimal
	CurrentUnitCost  decimal.Decimal
	VariationPercent decimal.Decimal
	Threshold        decimal.Decimal
	Direction        string // increase | decrease

	Status    string // new | viewed | resolved | ignored
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidAlertStatus informa se s é um status de resolução conhecido.
func ValidAlertStatus(s string) bool {
	switch s {
	case AlertStatusNew, AlertStatusViewed, AlertStatusResolved, AlertStatusIgnored:
		return true
	}
	return false
}
