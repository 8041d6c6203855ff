package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// CostAlertFilter filtros de listagem de alertas.
type CostAlertFilter struct {
	SKUID  string
	Status string
	Limit  int
	Offset int
}

// CostAlertRepository define o porto de persistência para alertas de variação
// de custo.
type CostAlertRepository interface {
	Create(ctx context.Context, alert *entity.CostAlert) error
	GetByID(ctx context.Context, id string) (*entity.CostAlert, error)
	List(ctx context.Context, filter CostAlertFilter) ([]*entity.CostAlert, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
