package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// IndirectCostRepository define o porto de persistência para o razão mensal
// de custos indiretos.
type IndirectCostRepository interface {
	Create(ctx context.Context, cost *entity.IndirectCost) error
	GetByID(ctx context.Context, id string) (*entity.IndirectCost, error)
	ListByPeriod(ctx context.Context, period string) ([]*entity.IndirectCost, error)
	Delete(ctx context.Context, id string) error
}
