package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/agrococo/custos-api/internal/domain/costing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Compose — composição de totais e margem.
// ──────────────────────────────────────────────────────────────────────────────

// Cenário: uma linha de BOM (custo 2.00, qty 1.0), 100 unidades, sem outros
// componentes nem desperdício → direto 200, total 200, unitário 2.00.
func TestCompose_SomenteMaterialDireto(t *testing.T) {
	totals := costing.Compose(
		costing.Components{DirectMaterial: d("200")},
		decimal.Zero, // desperdício
		d("100"),     // quantidade
		decimal.Zero, // sem preço de venda
	)

	assert.True(t, d("200").Equal(totals.Subtotal))
	assert.True(t, totals.WastageValue.IsZero())
	assert.True(t, d("200").Equal(totals.TotalCost))
	assert.True(t, d("2").Equal(totals.UnitCost))
	assert.True(t, totals.GrossMargin.IsZero())
	assert.True(t, totals.GrossMarginPercent.IsZero())
}

// Mesmo cenário com desperdício 10% → desperdício 20, total 220, unitário 2.20.
func TestCompose_ComDesperdicio(t *testing.T) {
	totals := costing.Compose(
		costing.Components{DirectMaterial: d("200")},
		d("10"),
		d("100"),
		decimal.Zero,
	)

	assert.True(t, d("20").Equal(totals.WastageValue), "desperdício: %s", totals.WastageValue)
	assert.True(t, d("220").Equal(totals.TotalCost))
	assert.True(t, d("2.2").Equal(totals.UnitCost))
}

// Propriedade: totalCost = subtotal × (1 + w/100) exatamente, para w >= 0.
func TestCompose_PropriedadeDesperdicio(t *testing.T) {
	subtotalComponents := costing.Components{
		DirectMaterial: d("123.45"),
		Labor:          d("678.90"),
		Indirect:       d("55.55"),
		Freight:        d("12.30"),
		Tax:            d("99.99"),
	}
	for _, w := range []string{"0", "1", "2.5", "10", "33.33", "100"} {
		totals := costing.Compose(subtotalComponents, d(w), d("10"), decimal.Zero)
		factor := decimal.NewFromInt(1).Add(d(w).Div(decimal.NewFromInt(100)))
		expected := totals.Subtotal.Mul(factor)
		assert.True(t, expected.Equal(totals.TotalCost),
			"w=%s: esperado %s, obtido %s", w, expected, totals.TotalCost)
	}
}

// Propriedade: unitCost × quantityProduced == totalCost (tolerância decimal).
func TestCompose_PropriedadeCustoUnitario(t *testing.T) {
	totals := costing.Compose(
		costing.Components{DirectMaterial: d("1000"), Labor: d("333.33")},
		d("7.5"),
		d("37"),
		decimal.Zero,
	)
	product := totals.UnitCost.Mul(d("37"))
	diff := product.Sub(totals.TotalCost).Abs()
	assert.True(t, diff.LessThan(d("0.0000000001")),
		"unitário × quantidade deve reconstituir o total (diferença %s)", diff)
}

// Preço de venda <= 0 → margens zero.
func TestCompose_SemPrecoDeVenda(t *testing.T) {
	for _, price := range []string{"0", "-10"} {
		totals := costing.Compose(
			costing.Components{DirectMaterial: d("100")},
			decimal.Zero, d("10"), d(price),
		)
		assert.True(t, totals.GrossMargin.IsZero(), "preço %s", price)
		assert.True(t, totals.GrossMarginPercent.IsZero(), "preço %s", price)
	}
}

// Margem bruta: preço 5.00, unitário 2.00 → margem 3.00 (60%).
func TestCompose_MargemBruta(t *testing.T) {
	totals := costing.Compose(
		costing.Components{DirectMaterial: d("200")},
		decimal.Zero,
		d("100"),
		d("5"),
	)
	assert.True(t, d("3").Equal(totals.GrossMargin))
	assert.True(t, d("60").Equal(totals.GrossMarginPercent))
}

// ──────────────────────────────────────────────────────────────────────────────
// EstimateTaxes — pilha de impostos sobre o valor estimado.
// ──────────────────────────────────────────────────────────────────────────────

// Cenário da especificação fiscal: valor 1000, ICMS 18%, PIS 1.65%,
// COFINS 7.6% → 180 + 16.5 + 76 = 272.5.
func TestEstimateTaxes_PilhaPadrao(t *testing.T) {
	taxes := costing.EstimateTaxes(d("1000"), d("18"), decimal.Zero, d("1.65"), d("7.6"), decimal.Zero)

	assert.True(t, d("180").Equal(taxes.ICMS))
	assert.True(t, d("16.5").Equal(taxes.PIS))
	assert.True(t, d("76").Equal(taxes.COFINS))
	assert.True(t, taxes.ICMSST.IsZero())
	assert.True(t, taxes.IPI.IsZero())
	assert.True(t, d("272.5").Equal(taxes.Total), "total: %s", taxes.Total)
}

func TestEstimateTaxes_ValorZero(t *testing.T) {
	taxes := costing.EstimateTaxes(decimal.Zero, d("18"), d("5"), d("1.65"), d("7.6"), d("10"))
	assert.True(t, taxes.Total.IsZero())
}
