package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.ShippingDestinationRepository = (*ShippingDestinationRepo)(nil)

// ShippingDestinationRepo implementação sobre PostgreSQL (usável com pool ou tx).
type ShippingDestinationRepo struct {
	q Querier
}

// NewShippingDestinationRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewShippingDestinationRepository(q Querier) *ShippingDestinationRepo {
	return &ShippingDestinationRepo{q: q}
}

const destinationColumns = `id, name, freight_type, freight_value, freight_formula,
	icms_percent, icms_st_percent, pis_percent, cofins_percent, ipi_percent,
	active, created_at, updated_at`

func scanDestination(row pgx.Row) (*entity.ShippingDestination, error) {
	var d entity.ShippingDestination
	err := row.Scan(
		&d.ID, &d.Name, &d.FreightType, &d.FreightValue, &d.FreightFormula,
		&d.ICMSPercent, &d.ICMSSTPercent, &d.PISPercent, &d.COFINSPercent, &d.IPIPercent,
		&d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create persiste um novo destino de entrega.
func (r *ShippingDestinationRepo) Create(ctx context.Context, dest *entity.ShippingDestination) error {
	query := `
		INSERT INTO shipping_destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		dest.ID, dest.Name, dest.FreightType, dest.FreightValue, dest.FreightFormula,
		dest.ICMSPercent, dest.ICMSSTPercent, dest.PISPercent, dest.COFINSPercent, dest.IPIPercent,
		dest.Active, dest.CreatedAt, dest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shipping destination: %w", err)
	}
	return nil
}

// GetByID obtém um destino por ID.
func (r *ShippingDestinationRepo) GetByID(ctx context.Context, id string) (*entity.ShippingDestination, error) {
	query := `SELECT ` + destinationColumns + ` FROM shipping_destinations WHERE id = $1`
	d, err := scanDestination(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipping destination: %w", err)
	}
	return d, nil
}

// Update atualiza um destino existente.
func (r *ShippingDestinationRepo) Update(ctx context.Context, dest *entity.ShippingDestination) error {
	query := `
		UPDATE shipping_destinations
		SET name = $2, freight_type = $3, freight_value = $4, freight_formula = $5,
		    icms_percent = $6, icms_st_percent = $7, pis_percent = $8,
		    cofins_percent = $9, ipi_percent = $10, active = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		dest.ID, dest.Name, dest.FreightType, dest.FreightValue, dest.FreightFormula,
		dest.ICMSPercent, dest.ICMSSTPercent, dest.PISPercent, dest.COFINSPercent, dest.IPIPercent,
		dest.Active, dest.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipping destination: %w", err)
	}
	return nil
}

// List lista destinos com paginação.
func (r *ShippingDestinationRepo) List(ctx context.Context, limit, offset int) ([]*entity.ShippingDestination, error) {
	query := `SELECT ` + destinationColumns + ` FROM shipping_destinations ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipping destinations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ShippingDestination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipping destination: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete elimina um destino por ID.
func (r *ShippingDestinationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM shipping_destinations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipping destination: %w", err)
	}
	return nil
}
