package repository

import (
	"context"

	"github.com/agrococo/custos-api/internal/domain/entity"
)

// EmployeeRepository define o porto de persistência para funcionários.
// ListActive alimenta o pool de mão de obra do motor de custos.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	ListActive(ctx context.Context) ([]*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	Delete(ctx context.Context, id string) error
}
