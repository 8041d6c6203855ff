package ports

import (
	"context"

	"github.com/agrococo/custos-api/internal/application/dto"
)

// LLMService define o porto de saída para o copiloto de custos. Qualquer
// adaptador (Anthropic, mock) implementa este contrato; a aplicação só conhece
// a interface, nunca a implementação concreta.
type LLMService interface {
	// SummarizeCostPeriod produz um resumo em linguagem natural do fechamento
	// de um período a partir do relatório agregado e da contagem de alertas
	// abertos. O contexto deve levar timeout para não bloquear em chamadas
	// externas.
	SummarizeCostPeriod(ctx context.Context, report *dto.PeriodReportResponse, openAlerts int) (string, error)
}
