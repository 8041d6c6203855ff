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

var _ repository.CostAlertRepository = (*CostAlertRepo)(nil)

// CostAlertRepo implementação sobre PostgreSQL (usável com pool ou tx).
type CostAlertRepo struct {
	q Querier
}

// NewCostAlertRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCostAlertRepository(q Querier) *CostAlertRepo {
	return &CostAlertRepo{q: q}
}

const costAlertColumns = `id, cost_record_id, sku_id, previous_unit_cost,
	current_unit_cost, variation_percent, threshold, direction, status,
	created_at, updated_at`

func scanCostAlert(row pgx.Row) (*entity.CostAlert, error) {
	var a entity.CostAlert
	err := row.Scan(
		&a.ID, &a.CostRecordID, &a.SKUID, &a.PreviousUnitCost,
		&a.CurrentUnitCost, &a.VariationPercent, &a.Threshold, &a.Direction, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste um alerta de variação de custo.
func (r *CostAlertRepo) Create(ctx context.Context, alert *entity.CostAlert) error {
	query := `
		INSERT INTO cost_alerts (` + costAlertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		alert.ID, alert.CostRecordID, alert.SKUID, alert.PreviousUnitCost,
		alert.CurrentUnitCost, alert.VariationPercent, alert.Threshold, alert.Direction, alert.Status,
		alert.CreatedAt, alert.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost alert: %w", err)
	}
	return nil
}

// GetByID obtém um alerta por ID.
func (r *CostAlertRepo) GetByID(ctx context.Context, id string) (*entity.CostAlert, error) {
	query := `SELECT ` + costAlertColumns + ` FROM cost_alerts WHERE id = $1`
	a, err := scanCostAlert(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost alert: %w", err)
	}
	return a, nil
}

// List lista alertas com filtros opcionais e paginação.
func (r *CostAlertRepo) List(ctx context.Context, filter repository.CostAlertFilter) ([]*entity.CostAlert, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.SKUID != "" {
		args = append(args, filter.SKUID)
		conditions = append(conditions, fmt.Sprintf("sku_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + costAlertColumns + ` FROM cost_alerts`
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
		return nil, fmt.Errorf("list cost alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostAlert
	for rows.Next() {
		a, err := scanCostAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cost alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// UpdateStatus muda o status de resolução do alerta.
func (r *CostAlertRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE cost_alerts SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update cost alert status: %w", err)
	}
	return nil
}
