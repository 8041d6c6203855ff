package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// CostSettingRepository define o porto de persistência para o store
// chave-valor tipado de configurações de custo.
type CostSettingRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.CostSetting, error)
	List(ctx context.Context) ([]*entity.CostSetting, error)
	Upsert(ctx context.Context, setting *entity.CostSetting) error
}
