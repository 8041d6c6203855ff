package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.WarehouseItemRepository = (*WarehouseItemRepo)(nil)

// WarehouseItemRepo implementação sobre PostgreSQL (usável com pool ou tx).
type WarehouseItemRepo struct {
	q Querier
}

// NewWarehouseItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewWarehouseItemRepository(q Querier) *WarehouseItemRepo {
	return &WarehouseItemRepo{q: q}
}

const warehouseItemColumns = `id, code, name, unit, unit_cost, current_stock, created_at, updated_at`

// Create persiste um novo item de almoxarifado.
func (r *WarehouseItemRepo) Create(ctx context.Context, item *entity.WarehouseItem) error {
	query := `
		INSERT INTO warehouse_items (` + warehouseItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Code, item.Name, item.Unit, item.UnitCost,
		item.CurrentStock, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse item: %w", err)
	}
	return nil
}

// GetByID obtém um item por ID.
func (r *WarehouseItemRepo) GetByID(ctx context.Context, id string) (*entity.WarehouseItem, error) {
	query := `SELECT ` + warehouseItemColumns + ` FROM warehouse_items WHERE id = $1`
	var w entity.WarehouseItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Code, &w.Name, &w.Unit, &w.UnitCost,
		&w.CurrentStock, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse item: %w", err)
	}
	return &w, nil
}

// Update atualiza um item existente.
func (r *WarehouseItemRepo) Update(ctx context.Context, item *entity.WarehouseItem) error {
	query := `
		UPDATE warehouse_items
		SET name = $2, unit = $3, unit_cost = $4, current_stock = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Unit, item.UnitCost, item.CurrentStock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse item: %w", err)
	}
	return nil
}

// List lista itens com paginação.
func (r *WarehouseItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.WarehouseItem, error) {
	query := `SELECT ` + warehouseItemColumns + ` FROM warehouse_items ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseItem
	for rows.Next() {
		var w entity.WarehouseItem
		if err := rows.Scan(&w.ID, &w.Code, &w.Name, &w.Unit, &w.UnitCost,
			&w.CurrentStock, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse item: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// Delete elimina um item por ID.
func (r *WarehouseItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouse_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse item: %w", err)
	}
	return nil
}
