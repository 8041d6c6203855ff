package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.CostSettingRepository = (*CostSettingRepo)(nil)

// CostSettingRepo implementação sobre PostgreSQL (usável com pool ou tx).
type CostSettingRepo struct {
	q Querier
}

// NewCostSettingRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCostSettingRepository(q Querier) *CostSettingRepo {
	return &CostSettingRepo{q: q}
}

const costSettingColumns = `key, type, value, description, updated_by, updated_at`

// GetByKey obtém uma configuração pela chave.
func (r *CostSettingRepo) GetByKey(ctx context.Context, key string) (*entity.CostSetting, error) {
	query := `SELECT ` + costSettingColumns + ` FROM cost_settings WHERE key = $1`
	var s entity.CostSetting
	err := r.q.QueryRow(ctx, query, key).Scan(
		&s.Key, &s.Type, &s.Value, &s.Description, &s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cost setting: %w", err)
	}
	return &s, nil
}

// List lista todas as configurações.
func (r *CostSettingRepo) List(ctx context.Context) ([]*entity.CostSetting, error) {
	query := `SELECT ` + costSettingColumns + ` FROM cost_settings ORDER BY key`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cost settings: %w", err)
	}
	defer rows.Close()
	var list []*entity.CostSetting
	for rows.Next() {
		var s entity.CostSetting
		if err := rows.Scan(&s.Key, &s.Type, &s.Value, &s.Description, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cost setting: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Upsert insere ou atualiza uma configuração pela chave.
func (r *CostSettingRepo) Upsert(ctx context.Context, setting *entity.CostSetting) error {
	query := `
		INSERT INTO cost_settings (` + costSettingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (key) DO UPDATE
		SET type = EXCLUDED.type, value = EXCLUDED.value,
		    description = EXCLUDED.description, updated_by = EXCLUDED.updated_by,
		    updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query,
		setting.Key, setting.Type, setting.Value, setting.Description, setting.UpdatedBy, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert cost setting: %w", err)
	}
	return nil
}
