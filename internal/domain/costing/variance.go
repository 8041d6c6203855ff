package costing

import "github.com/shopspring/decimal"

// VarianceResult descreve o desvio do custo unitário novo em relação ao último
// registro confirmado do SKU.
type VarianceResult struct {
	PreviousUnitCost decimal.Decimal
	CurrentUnitCost  decimal.Decimal
	VariationPercent decimal.Decimal
	Threshold        decimal.Decimal
	Direction        string // "increase" | "decrease"
	Exceeded         bool   // |variação| >= threshold
}

// CheckVariance compara o custo unitário novo contra o anterior e decide se o
// threshold foi atingido. Comparação unilateral contra o único último registro
// confirmado — nunca média móvel nem múltiplos períodos (regra de negócio
// pendente de revisão do produto; não "melhorar" aqui).
//
// Devolve nil quando previousUnitCost <= 0 (sem base de comparação).
func CheckVariance(previousUnitCost, currentUnitCost, threshold decimal.Decimal) *VarianceResult {
	if !previousUnitCost.GreaterThan(decimal.Zero) {
		return nil
	}
	variation := currentUnitCost.Sub(previousUnitCost).Div(previousUnitCost).Mul(hundred)
	direction := "increase"
	if variation.IsNegative() {
		direction = "decrease"
	}
	return &VarianceResult{
		PreviousUnitCost: previousUnitCost,
		CurrentUnitCost:  currentUnitCost,
		VariationPercent: variation,
		Threshold:        threshold,
		Direction:        direction,
		Exceeded:         variation.Abs().GreaterThanOrEqual(threshold),
	}
}
