package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// CostRecordFilter filtros de listagem de registros de custo.
type CostRecordFilter struct {
	SKUID  string
	Period string
	Status string
	Limit  int
	Offset int
}

// CostRecordRepository define o porto de persistência para registros de custo.
// LatestConfirmedBySKU alimenta a comparação de variação: o único último
// registro confirmado do SKU, qualquer período, ordenado por criação desc.
type CostRecordRepository interface {
	Create(ctx context.Context, record *entity.CostRecord) error
	GetByID(ctx context.Context, id string) (*entity.CostRecord, error)
	List(ctx context.Context, filter CostRecordFilter) ([]*entity.CostRecord, error)
	LatestConfirmedBySKU(ctx context.Context, skuID string) (*entity.CostRecord, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
