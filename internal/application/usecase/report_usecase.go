package usecase

import (
	"context"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// ReportUseCase relatório de fechamento de período: agrega os registros
// confirmados/fechados e opcionalmente renderiza em PDF.
type ReportUseCase struct {
	repo repository.ReportRepository
	pdf  ReportPDFGenerator
}

// NewReportUseCase constrói o caso de uso.
func NewReportUseCase(repo repository.ReportRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf}
}

// PeriodReport monta o fechamento JSON de um período (AAAA-MM).
func (uc *ReportUseCase) PeriodReport(ctx context.Context, period string) (*dto.PeriodReportResponse, error) {
	if !validPeriod(period) {
		return nil, domain.ErrInvalidPeriod
	}
	summary, err := uc.repo.GetPeriodSummary(ctx, period)
	if err != nil {
		return nil, err
	}
	breakdown, err := uc.repo.GetPeriodSKUBreakdown(ctx, period)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.PeriodReportRow, 0, len(breakdown))
	for _, r := range breakdown {
		rows = append(rows, dto.PeriodReportRow{
			SKUID:              r.SKUID,
			SKUCode:            r.SKUCode,
			SKUDescription:     r.SKUDescription,
			QuantityProduced:   r.QuantityProduced,
			TotalCost:          r.TotalCost,
			UnitCost:           r.UnitCost,
			GrossMarginPercent: r.GrossMarginPercent,
			Status:             r.Status,
		})
	}
	return &dto.PeriodReportResponse{
		Period:              summary.Period,
		RecordCount:         summary.RecordCount,
		TotalQuantity:       summary.TotalQuantity,
		TotalDirectMaterial: summary.TotalDirectMaterial,
		TotalLabor:          summary.TotalLabor,
		TotalIndirect:       summary.TotalIndirect,
		TotalFreight:        summary.TotalFreight,
		TotalTax:            summary.TotalTax,
		TotalWastage:        summary.TotalWastage,
		TotalCost:           summary.TotalCost,
		AvgUnitCost:         summary.AvgUnitCost,
		AvgMarginPercent:    summary.AvgMarginPercent,
		Rows:                rows,
	}, nil
}

// PeriodReportPDF monta o fechamento e renderiza em PDF.
func (uc *ReportUseCase) PeriodReportPDF(ctx context.Context, period string) ([]byte, error) {
	report, err := uc.PeriodReport(ctx, period)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePeriodReportPDF(ctx, report)
}

// validPeriod checa o formato AAAA-MM com mês 01..12.
func validPeriod(period string) bool {
	if len(period) != 7 || period[4] != '-' {
		return false
	}
	for i, c := range period {
		if i == 4 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	month := (period[5]-'0')*10 + (period[6] - '0')
	return month >= 1 && month <= 12
}
