package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrococo/custos-api/internal/domain/costing"
)

// ──────────────────────────────────────────────────────────────────────────────
// EvaluateFormula — avaliador restrito de fórmulas de frete.
//
// O avaliador substitui o eval dinâmico do sistema legado: qualquer coisa fora
// de números, + - * / ( ) e as variáveis peso/valor deve retornar erro, nunca
// executar.
// ──────────────────────────────────────────────────────────────────────────────

func vars(weight, value float64) costing.FormulaVars {
	return costing.FormulaVars{
		Weight: decimal.NewFromFloat(weight),
		Value:  decimal.NewFromFloat(value),
	}
}

func TestEvaluateFormula_OK(t *testing.T) {
	cases := []struct {
		name     string
		formula  string
		vars     costing.FormulaVars
		expected string
	}{
		{"literal simples", "42", vars(0, 0), "42"},
		{"soma e subtração", "10 + 5 - 3", vars(0, 0), "12"},
		{"precedência de operadores", "2 + 3 * 4", vars(0, 0), "14"},
		{"parênteses", "(2 + 3) * 4", vars(0, 0), "20"},
		{"divisão", "10 / 4", vars(0, 0), "2.5"},
		{"unário negativo", "-5 + 10", vars(0, 0), "5"},
		{"variável peso", "peso * 2", vars(150, 0), "300"},
		{"variável weight (inglês)", "weight * 2", vars(150, 0), "300"},
		{"variável valor", "valor * 0.05", vars(0, 1000), "50"},
		{"variável value (inglês)", "value * 0.05", vars(0, 1000), "50"},
		{"fórmula típica de frete", "50 + peso * 0.8 + valor * 0.01", vars(100, 2000), "150"},
		{"maiúsculas e minúsculas", "PESO + Valor", vars(10, 20), "30"},
		{"decimal com ponto", "1.5 * peso", vars(4, 0), "6"},
		{"parênteses aninhados", "((peso + 10) * (2 + 1))", vars(5, 0), "45"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := costing.EvaluateFormula(tc.formula, tc.vars)
			require.NoError(t, err)
			expected, _ := decimal.NewFromString(tc.expected)
			assert.True(t, expected.Equal(got),
				"fórmula %q: esperado %s, obtido %s", tc.formula, expected, got)
		})
	}
}

func TestEvaluateFormula_Malformada(t *testing.T) {
	cases := []struct {
		name    string
		formula string
	}{
		{"vazia", ""},
		{"somente espaços", "   "},
		{"parêntese aberto", "(peso + 2"},
		{"parêntese extra", "peso + 2)"},
		{"operador pendurado", "peso +"},
		{"operadores consecutivos", "peso * / 2"},
		{"variável desconhecida", "peso * taxa"},
		{"tentativa de injeção", "require('fs')"},
		{"caractere inválido", "peso $ 2"},
		{"número malformado", "1.2.3 + peso"},
		{"divisão por zero", "valor / 0"},
		{"divisão por expressão zero", "peso / (2 - 2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := costing.EvaluateFormula(tc.formula, vars(100, 1000))
			assert.Error(t, err, "fórmula %q deve retornar erro", tc.formula)
		})
	}
}

// Fórmulas determinísticas: o mesmo input sempre produz o mesmo resultado.
func TestEvaluateFormula_Deterministica(t *testing.T) {
	v := vars(123.45, 9876.54)
	r1, err1 := costing.EvaluateFormula("peso * 1.2 + valor / 100", v)
	r2, err2 := costing.EvaluateFormula("peso * 1.2 + valor / 100", v)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.True(t, r1.Equal(r2))
}
