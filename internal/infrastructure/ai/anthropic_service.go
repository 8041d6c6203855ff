package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/ports"
)

// Verificação em tempo de compilação de que AnthropicService implementa LLMService.
var _ ports.LLMService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Você é um analista de custos industriais de uma processadora de coco.
Receberá os números agregados do fechamento de custos de um período (AAAA-MM).
Produza um resumo executivo em português, em texto corrido, com no máximo 4 parágrafos curtos:
1. visão geral do período (quantos registros, custo total, custo unitário médio);
2. composição do custo (material direto, mão de obra, indiretos, frete, impostos, desperdício);
3. margem média e SKUs com margem fraca, se houver;
4. alertas de variação abertos e o que investigar primeiro.
Não invente números que não estejam nos dados. Não use markdown.`
)

// AnthropicService adaptador que implementa LLMService usando a API REST da
// Anthropic (Claude) via net/http da biblioteca padrão; não requer SDK.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService constrói o adaptador. model costuma ser
// "claude-3-5-haiku-20241022". apiKey vazio devolve erro descritivo nas
// chamadas em vez de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de rede de 25 s; o caso de uso impõe ainda um
			// context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estruturas internas do protocolo Anthropic Messages API ───────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementação do porto ────────────────────────────────────────────────────

// SummarizeCostPeriod envia o fechamento agregado do período para o Claude e
// devolve o resumo executivo em texto puro.
func (s *AnthropicService) SummarizeCostPeriod(ctx context.Context, report *dto.PeriodReportResponse, openAlerts int) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY não configurado")
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("AI: serializar relatório: %w", err)
	}
	userContent := fmt.Sprintf("Período: %s\nAlertas de variação abertos: %d\nFechamento agregado (JSON):\n%s",
		report.Period, openAlerts, reportJSON)

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: criar HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout ou cancelamento: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: chamada HTTP falhou: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: desserializar resposta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolveu resposta vazia")
	}

	return strings.TrimSpace(anthResp.Content[0].Text), nil
}
