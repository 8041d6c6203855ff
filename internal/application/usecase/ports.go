package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/agrococo/custos-api/internal/application/dto"
)

// validate instância compartilhada pelos casos de uso deste pacote.
var validate = validator.New()

// ReportPDFGenerator porto de saída para renderizar o fechamento de período
// em PDF. Implementado pela infraestrutura (Maroto).
type ReportPDFGenerator interface {
	GeneratePeriodReportPDF(ctx context.Context, report *dto.PeriodReportResponse) ([]byte, error)
}
