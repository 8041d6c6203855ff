package postgres

import (
	"context"
	"fmt"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas agregadas read-only sobre cost_records para o
// relatório de fechamento de período.
type ReportRepo struct {
	q Querier
}

// NewReportRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetPeriodSummary agrega os registros confirmados e fechados de um período.
func (r *ReportRepo) GetPeriodSummary(ctx context.Context, period string) (*repository.PeriodCostSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(quantity_produced), 0),
			COALESCE(SUM(direct_material_cost), 0),
			COALESCE(SUM(labor_cost), 0),
			COALESCE(SUM(indirect_cost), 0),
			COALESCE(SUM(freight_cost), 0),
			COALESCE(SUM(tax_cost), 0),
			COALESCE(SUM(wastage_value), 0),
			COALESCE(SUM(total_cost), 0),
			COALESCE(AVG(unit_cost), 0),
			COALESCE(AVG(gross_margin_percent), 0)
		FROM cost_records
		WHERE period = $1 AND status IN ($2, $3)`
	s := repository.PeriodCostSummary{Period: period}
	err := r.q.QueryRow(ctx, query, period,
		entity.CostRecordStatusConfirmed, entity.CostRecordStatusClosed,
	).Scan(
		&s.RecordCount, &s.TotalQuantity, &s.TotalDirectMaterial, &s.TotalLabor,
		&s.TotalIndirect, &s.TotalFreight, &s.TotalTax, &s.TotalWastage,
		&s.TotalCost, &s.AvgUnitCost, &s.AvgMarginPercent,
	)
	if err != nil {
		return nil, fmt.Errorf("period summary: %w", err)
	}
	return &s, nil
}

// GetPeriodSKUBreakdown devolve uma linha por registro confirmado/fechado do
// período, com código e descrição do SKU.
func (r *ReportRepo) GetPeriodSKUBreakdown(ctx context.Context, period string) ([]repository.PeriodSKURow, error) {
	query := `
		SELECT cr.sku_id, s.code, s.description,
		       cr.quantity_produced, cr.total_cost, cr.unit_cost,
		       cr.gross_margin_percent, cr.status
		FROM cost_records cr
		JOIN skus s ON s.id = cr.sku_id
		WHERE cr.period = $1 AND cr.status IN ($2, $3)
		ORDER BY s.code, cr.created_at`
	rows, err := r.q.Query(ctx, query, period,
		entity.CostRecordStatusConfirmed, entity.CostRecordStatusClosed,
	)
	if err != nil {
		return nil, fmt.Errorf("period breakdown: %w", err)
	}
	defer rows.Close()
	var list []repository.PeriodSKURow
	for rows.Next() {
		var row repository.PeriodSKURow
		if err := rows.Scan(&row.SKUID, &row.SKUCode, &row.SKUDescription,
			&row.QuantityProduced, &row.TotalCost, &row.UnitCost,
			&row.GrossMarginPercent, &row.Status); err != nil {
			return nil, fmt.Errorf("scan period row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
