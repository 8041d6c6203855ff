package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// ShippingDestinationRepository define o porto de persistência para destinos
// de entrega (regras de frete + alíquotas).
type ShippingDestinationRepository interface {
	Create(ctx context.Context, dest *entity.ShippingDestination) error
	GetByID(ctx context.Context, id string) (*entity.ShippingDestination, error)
	Update(ctx context.Context, dest *entity.ShippingDestination) error
	List(ctx context.Context, limit, offset int) ([]*entity.ShippingDestination, error)
	Delete(ctx context.Context, id string) error
}
