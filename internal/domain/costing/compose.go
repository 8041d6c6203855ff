package costing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Components são os componentes independentes de custo de uma execução,
// já totalizados pelas etapas anteriores do motor.
type Components struct {
	DirectMaterial decimal.Decimal
	Labor          decimal.Decimal
	Indirect       decimal.Decimal
	Freight        decimal.Decimal
	Tax            decimal.Decimal
}

// Totals é a economia unitária final composta a partir dos componentes.
type Totals struct {
	Subtotal           decimal.Decimal
	WastageValue       decimal.Decimal
	TotalCost          decimal.Decimal
	UnitCost           decimal.Decimal
	GrossMargin        decimal.Decimal
	GrossMarginPercent decimal.Decimal
}

// Compose aplica o percentual de desperdício global sobre o subtotal e deriva
// custo total, custo unitário e margem bruta contra o preço de venda.
//
//	subtotal    = direto + mão de obra + indireto + frete + impostos
//	desperdício = subtotal × wastagePercent/100
//	total       = subtotal + desperdício
//	unitário    = total / quantityProduced
//
// O caller garante quantityProduced > 0 via validação de entrada; margens são
// zero quando sellingPrice <= 0.
func Compose(c Components, wastagePercent, quantityProduced, sellingPrice decimal.Decimal) Totals {
	subtotal := c.DirectMaterial.Add(c.Labor).Add(c.Indirect).Add(c.Freight).Add(c.Tax)
	wastageValue := subtotal.Mul(wastagePercent).Div(hundred)
	totalCost := subtotal.Add(wastageValue)
	unitCost := totalCost.Div(quantityProduced)

	grossMargin := decimal.Zero
	grossMarginPercent := decimal.Zero
	if sellingPrice.GreaterThan(decimal.Zero) {
		grossMargin = sellingPrice.Sub(unitCost)
		grossMarginPercent = grossMargin.Div(sellingPrice).Mul(hundred)
	}

	return Totals{
		Subtotal:           subtotal,
		WastageValue:       wastageValue,
		TotalCost:          totalCost,
		UnitCost:           unitCost,
		GrossMargin:        grossMargin,
		GrossMarginPercent: grossMarginPercent,
	}
}

// TaxEstimate calcula cada imposto como percentual independente do valor
// estimado da remessa e o total da pilha ICMS + ICMS-ST + PIS + COFINS + IPI.
type TaxEstimate struct {
	ICMS   decimal.Decimal
	ICMSST decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	IPI    decimal.Decimal
	Total  decimal.Decimal
}

// EstimateTaxes aplica as alíquotas do destino sobre o valor estimado.
func EstimateTaxes(estimatedValue, icms, icmsST, pis, cofins, ipi decimal.Decimal) TaxEstimate {
	pct := func(rate decimal.Decimal) decimal.Decimal {
		return estimatedValue.Mul(rate).Div(hundred)
	}
	t := TaxEstimate{
		ICMS:   pct(icms),
		ICMSST: pct(icmsST),
		PIS:    pct(pis),
		COFINS: pct(cofins),
		IPI:    pct(ipi),
	}
	t.Total = t.ICMS.Add(t.ICMSST).Add(t.PIS).Add(t.COFINS).Add(t.IPI)
	return t
}
