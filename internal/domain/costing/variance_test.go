package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrococo/custos-api/internal/domain/costing"
)

// ──────────────────────────────────────────────────────────────────────────────
// CheckVariance — comparação unilateral contra o último registro confirmado.
// ──────────────────────────────────────────────────────────────────────────────

// Anterior 2.00 → novo 2.50 com threshold 10% ⇒ +25%, threshold atingido,
// direção increase.
func TestCheckVariance_AltaAcimaDoThreshold(t *testing.T) {
	res := costing.CheckVariance(d("2"), d("2.5"), d("10"))
	require.NotNil(t, res)

	assert.True(t, d("25").Equal(res.VariationPercent), "variação: %s", res.VariationPercent)
	assert.Equal(t, "increase", res.Direction)
	assert.True(t, res.Exceeded)
}

// Anterior 2.00 → novo 2.05 com threshold 10% ⇒ +2.5%, abaixo do threshold.
func TestCheckVariance_AbaixoDoThreshold(t *testing.T) {
	res := costing.CheckVariance(d("2"), d("2.05"), d("10"))
	require.NotNil(t, res)

	assert.True(t, d("2.5").Equal(res.VariationPercent))
	assert.False(t, res.Exceeded)
}

// Queda de custo: anterior 2.00 → novo 1.50 ⇒ -25%, direção decrease.
func TestCheckVariance_Queda(t *testing.T) {
	res := costing.CheckVariance(d("2"), d("1.5"), d("10"))
	require.NotNil(t, res)

	assert.True(t, d("-25").Equal(res.VariationPercent))
	assert.Equal(t, "decrease", res.Direction)
	assert.True(t, res.Exceeded)
}

// Variação exatamente igual ao threshold conta como atingida (>=).
func TestCheckVariance_IgualAoThreshold(t *testing.T) {
	res := costing.CheckVariance(d("2"), d("2.2"), d("10"))
	require.NotNil(t, res)

	assert.True(t, d("10").Equal(res.VariationPercent))
	assert.True(t, res.Exceeded)
}

// Sem base de comparação (custo anterior <= 0) ⇒ nil, nenhum alerta possível.
func TestCheckVariance_SemBase(t *testing.T) {
	assert.Nil(t, costing.CheckVariance(decimal.Zero, d("2"), d("10")))
	assert.Nil(t, costing.CheckVariance(d("-1"), d("2"), d("10")))
}
