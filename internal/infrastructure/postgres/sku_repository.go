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

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo implementação do porto SKURepository sobre PostgreSQL (usável com pool ou tx).
type SKURepo struct {
	q Querier
}

// NewSKURepository constrói o adaptador de persistência para SKUs. Passar pool ou tx (Querier).
func NewSKURepository(q Querier) *SKURepo {
	return &SKURepo{q: q}
}

const skuColumns = `id, code, description, package_weight, shelf_life_days, suggested_price, current_stock, created_at, updated_at`

// Create persiste um novo SKU.
func (r *SKURepo) Create(ctx context.Context, sku *entity.SKU) error {
	query := `
		INSERT INTO skus (` + skuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		sku.ID, sku.Code, sku.Description, sku.PackageWeight, sku.ShelfLifeDays,
		sku.SuggestedPrice, sku.CurrentStock, sku.CreatedAt, sku.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID obtém um SKU por ID.
func (r *SKURepo) GetByID(ctx context.Context, id string) (*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get sku")
}

// GetByCode obtém um SKU pelo código único.
func (r *SKURepo) GetByCode(ctx context.Context, code string) (*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus WHERE code = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, code), "get sku by code")
}

// Update atualiza um SKU existente.
func (r *SKURepo) Update(ctx context.Context, sku *entity.SKU) error {
	query := `
		UPDATE skus
		SET description = $2, package_weight = $3, shelf_life_days = $4,
		    suggested_price = $5, current_stock = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sku.ID, sku.Description, sku.PackageWeight, sku.ShelfLifeDays,
		sku.SuggestedPrice, sku.CurrentStock, sku.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sku: %w", err)
	}
	return nil
}

// List lista SKUs com paginação.
func (r *SKURepo) List(ctx context.Context, limit, offset int) ([]*entity.SKU, error) {
	query := `SELECT ` + skuColumns + ` FROM skus ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.Code, &s.Description, &s.PackageWeight, &s.ShelfLifeDays,
			&s.SuggestedPrice, &s.CurrentStock, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina um SKU por ID.
func (r *SKURepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM skus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sku: %w", err)
	}
	return nil
}

func (r *SKURepo) scanOne(row pgx.Row, op string) (*entity.SKU, error) {
	var s entity.SKU
	err := row.Scan(&s.ID, &s.Code, &s.Description, &s.PackageWeight, &s.ShelfLifeDays,
		&s.SuggestedPrice, &s.CurrentStock, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}

// ── BOM items ─────────────────────────────────────────────────────────────────

var _ repository.BOMItemRepository = (*BOMItemRepo)(nil)

// BOMItemRepo implementação do porto BOMItemRepository sobre PostgreSQL.
type BOMItemRepo struct {
	q Querier
}

// NewBOMItemRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewBOMItemRepository(q Querier) *BOMItemRepo {
	return &BOMItemRepo{q: q}
}

const bomColumns = `id, sku_id, warehouse_item_id, quantity_per_unit, unit, waste_percent, optional, created_at`

// Create persiste uma linha de ficha técnica.
func (r *BOMItemRepo) Create(ctx context.Context, item *entity.BOMItem) error {
	query := `
		INSERT INTO bom_items (` + bomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.SKUID, item.WarehouseItemID, item.QuantityPerUnit,
		item.Unit, item.WastePercent, item.Optional, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bom item: %w", err)
	}
	return nil
}

// GetByID obtém uma linha por ID.
func (r *BOMItemRepo) GetByID(ctx context.Context, id string) (*entity.BOMItem, error) {
	query := `SELECT ` + bomColumns + ` FROM bom_items WHERE id = $1`
	var b entity.BOMItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.SKUID, &b.WarehouseItemID, &b.QuantityPerUnit,
		&b.Unit, &b.WastePercent, &b.Optional, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bom item: %w", err)
	}
	return &b, nil
}

// ListBySKU lista todas as linhas da ficha técnica de um SKU.
func (r *BOMItemRepo) ListBySKU(ctx context.Context, skuID string) ([]*entity.BOMItem, error) {
	query := `SELECT ` + bomColumns + ` FROM bom_items WHERE sku_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, skuID)
	if err != nil {
		return nil, fmt.Errorf("list bom items: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMItem
	for rows.Next() {
		var b entity.BOMItem
		if err := rows.Scan(&b.ID, &b.SKUID, &b.WarehouseItemID, &b.QuantityPerUnit,
			&b.Unit, &b.WastePercent, &b.Optional, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bom item: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// Delete elimina uma linha por ID.
func (r *BOMItemRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM bom_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bom item: %w", err)
	}
	return nil
}
