package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.IndirectCostRepository = (*IndirectCostRepo)(nil)

// IndirectCostRepo implementação sobre PostgreSQL (usável com pool ou tx).
type IndirectCostRepo struct {
	q Querier
}

// NewIndirectCostRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewIndirectCostRepository(q Querier) *IndirectCostRepo {
	return &IndirectCostRepo{q: q}
}

const indirectCostColumns = `id, period, category, description, value, created_at`

// Create persiste um lançamento de custo indireto.
func (r *IndirectCostRepo) Create(ctx context.Context, cost *entity.IndirectCost) error {
	query := `
		INSERT INTO indirect_costs (` + indirectCostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		cost.ID, cost.Period, cost.Category, cost.Description, cost.Value, cost.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert indirect cost: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID.
func (r *IndirectCostRepo) GetByID(ctx context.Context, id string) (*entity.IndirectCost, error) {
	query := `SELECT ` + indirectCostColumns + ` FROM indirect_costs WHERE id = $1`
	var c entity.IndirectCost
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Period, &c.Category, &c.Description, &c.Value, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get indirect cost: %w", err)
	}
	return &c, nil
}

// ListByPeriod lista todos os lançamentos de um período (AAAA-MM).
func (r *IndirectCostRepo) ListByPeriod(ctx context.Context, period string) ([]*entity.IndirectCost, error) {
	query := `SELECT ` + indirectCostColumns + ` FROM indirect_costs WHERE period = $1 ORDER BY category, created_at`
	rows, err := r.q.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("list indirect costs: %w", err)
	}
	defer rows.Close()
	var list []*entity.IndirectCost
	for rows.Next() {
		var c entity.IndirectCost
		if err := rows.Scan(&c.ID, &c.Period, &c.Category, &c.Description, &c.Value, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan indirect cost: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina um lançamento por ID.
func (r *IndirectCostRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM indirect_costs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete indirect cost: %w", err)
	}
	return nil
}
