package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para usuários da API.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
