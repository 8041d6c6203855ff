package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/ports"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// Limiares das regras de insight do copiloto.
var (
	marginWeak     = decimal.NewFromInt(10) // margem bruta < 10% => warning
	marginCritical = decimal.NewFromInt(0)  // margem <= 0 => critical
)

// InsightUseCase o copiloto de custos: insights por regra (variação de custo,
// erosão de margem) e resumo do período via LLM.
type InsightUseCase struct {
	reportRepo repository.ReportRepository
	alertRepo  repository.CostAlertRepository
	llm        ports.LLMService
}

// NewInsightUseCase constrói o caso de uso.
func NewInsightUseCase(
	reportRepo repository.ReportRepository,
	alertRepo repository.CostAlertRepository,
	llm ports.LLMService,
) *InsightUseCase {
	return &InsightUseCase{reportRepo: reportRepo, alertRepo: alertRepo, llm: llm}
}

// Generate roda as regras de insight sobre o período: alertas de variação
// abertos e SKUs com margem fraca ou negativa.
func (uc *InsightUseCase) Generate(ctx context.Context, period string) (*dto.InsightListResponse, error) {
	if !validPeriod(period) {
		return nil, domain.ErrInvalidPeriod
	}
	now := time.Now()
	var items []dto.InsightResponse

	// Regra 1: alertas de variação ainda não resolvidos.
	alerts, err := uc.alertRepo.List(ctx, repository.CostAlertFilter{
		Status: entity.AlertStatusNew,
		Limit:  100,
	})
	if err != nil {
		return nil, err
	}
	for _, a := range alerts {
		severity := dto.InsightSeverityWarning
		if a.VariationPercent.Abs().GreaterThanOrEqual(a.Threshold.Mul(decimal.NewFromInt(2))) {
			severity = dto.InsightSeverityCritical
		}
		verb := "subiu"
		if a.Direction == entity.AlertDirectionDecrease {
			verb = "caiu"
		}
		items = append(items, dto.InsightResponse{
			Type:     "cost_variance",
			Severity: severity,
			SKUID:    a.SKUID,
			Message: fmt.Sprintf("custo unitário %s %s%% em relação ao último registro confirmado (threshold %s%%)",
				verb, a.VariationPercent.Abs().StringFixed(1), a.Threshold.StringFixed(0)),
			Value:       a.VariationPercent,
			GeneratedAt: now,
		})
	}

	// Regra 2: SKUs do período com margem fraca ou negativa.
	rows, err := uc.reportRepo.GetPeriodSKUBreakdown(ctx, period)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.GrossMarginPercent.GreaterThanOrEqual(marginWeak) {
			continue
		}
		severity := dto.InsightSeverityWarning
		if r.GrossMarginPercent.LessThanOrEqual(marginCritical) {
			severity = dto.InsightSeverityCritical
		}
		items = append(items, dto.InsightResponse{
			Type:     "margin_erosion",
			Severity: severity,
			SKUID:    r.SKUID,
			SKUCode:  r.SKUCode,
			Message: fmt.Sprintf("margem bruta de %s em %s%% — abaixo do mínimo saudável de %s%%",
				r.SKUCode, r.GrossMarginPercent.StringFixed(1), marginWeak.StringFixed(0)),
			Value:       r.GrossMarginPercent,
			GeneratedAt: now,
		})
	}

	return &dto.InsightListResponse{Period: period, Items: items}, nil
}

// Summarize produz o resumo executivo do período via LLM, com timeout de 10 s
// para não prender goroutines do servidor em latência externa.
func (uc *InsightUseCase) Summarize(ctx context.Context, report *dto.PeriodReportResponse) (*dto.CopilotSummaryResponse, error) {
	alerts, err := uc.alertRepo.List(ctx, repository.CostAlertFilter{
		Status: entity.AlertStatusNew,
		Limit:  100,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	summary, err := uc.llm.SummarizeCostPeriod(ctx, report, len(alerts))
	if err != nil {
		return nil, fmt.Errorf("resumo do copiloto: %w", err)
	}
	return &dto.CopilotSummaryResponse{Period: report.Period, Summary: summary}, nil
}
