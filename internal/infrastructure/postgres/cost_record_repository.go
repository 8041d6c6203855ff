package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.CostRecordRepository = (*CostRecordRepo)(nil)

// CostRecordRepo implementação sobre PostgreSQL (usável com pool ou tx — o
// TxRunner ata este repo à transação da gravação atômica registro+alerta).
type CostRecordRepo struct {
	q Querier
}

// NewCostRecordRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCostRecordRepository(q Querier) *CostRecordRepo {
	return &CostRecordRepo{q: q}
}

const costRecordColumns = `id, sku_id, period, quantity_produced,
	direct_material_cost, labor_cost, indirect_cost, freight_cost, tax_cost,
	wastage_percent, wastage_value, total_cost, unit_cost,
	selling_price, gross_margin, gross_margin_percent,
	detail, observations, status, created_by, created_at, updated_at`

func scanCostRecord(row pgx.Row) (*entity.CostRecord, error) {
	var c entity.CostRecord
	err := row.Scan(
		&c.ID, &c.SKUID, &c.Period, &c.QuantityProduced,
		&c.DirectMaterialCost, &c.LaborCost, &c.IndirectCost, &c.FreightCost, &c.TaxCost,
		&c.WastagePercent, &c.WastageValue, &c.TotalCost, &c.UnitCost,
		&c.SellingPrice, &c.GrossMargin, &c.GrossMarginPercent,
		&c.Detail, &c.Observations, &c.Status, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste um registro de custo.
func (r *CostRecordRepo) Create(ctx context.Context, record *entity.CostRecord) error {
	query := `
		INSERT INTO cost_records (` + costRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		record.ID, record.SKUID, record.Period, record.QuantityProduced,
		record.DirectMaterialCost, record.LaborCost, record.IndirectCost, record.FreightCost, record.TaxCost,
		record.WastagePercent, record.WastageValue, record.TotalCost, record.UnitCost,
		record.SellingPrice, record.GrossMargin, record.GrossMarginPercent,
		record.Detail, record.Observations, record.Status, record.CreatedBy, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost record: %w", err)
	}
	return nil
}

// GetByID obtém um registro por ID.
func (r *CostRecordRepo) GetByID(ctx context.Context, id string) (*entity.CostRecord, error) {
	query := `SELECT ` + costRecordColumns + ` FROM cost_records WHERE id = $1`
	c, err := scanCostRecord(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost record: %w", err)
	}
	return c, nil
}

// List lista registros com filtros opcionais e paginação.
func (r *CostRecordRepo) List(ctx context.Context, filter repository.CostRecordFilter) ([]*entity.CostRecord, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.SKUID != "" {
		args = append(args, filter.SKUID)
		conditions = append(conditions, fmt.Sprintf("sku_id = $%d", len(args)))
	}
	if filter.Period != "" {
		args = append(args, filter.Period)
		conditions = append(conditions, fmt.Sprintf("period = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + costRecordColumns + ` FROM cost_records`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cost records: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostRecord
	for rows.Next() {
		c, err := scanCostRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost record: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// LatestConfirmedBySKU devolve o registro confirmado mais recente do SKU,
// qualquer período. Base da comparação de variação de custo unitário.
func (r *CostRecordRepo) LatestConfirmedBySKU(ctx context.Context, skuID string) (*entity.CostRecord, error) {
	query := `
		SELECT ` + costRecordColumns + `
		FROM cost_records
		WHERE sku_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`
	c, err := scanCostRecord(r.q.QueryRow(ctx, query, skuID, entity.CostRecordStatusConfirmed))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest confirmed cost record: %w", err)
	}
	return c, nil
}

// UpdateStatus muda o status do ciclo de vida do registro.
func (r *CostRecordRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE cost_records SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update cost record status: %w", err)
	}
	return nil
}

// Delete elimina um registro por ID. A guarda de registro fechado fica no
// caso de uso, que carrega o registro antes.
func (r *CostRecordRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM cost_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cost record: %w", err)
	}
	return nil
}
