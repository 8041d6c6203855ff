package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// ── fakes em memória (repos vazios: GetByID devolve nil, nil) ─────────────────

type fakeSKURepo struct {
	repository.SKURepository
}

func (f *fakeSKURepo) GetByID(_ context.Context, _ string) (*entity.SKU, error) {
	return nil, nil
}

type fakeWarehouseItemRepo struct {
	repository.WarehouseItemRepository
}

func (f *fakeWarehouseItemRepo) GetByID(_ context.Context, _ string) (*entity.WarehouseItem, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	repository.EmployeeRepository
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (*entity.Employee, error) {
	return nil, nil
}

// Atualizar recursos de cadastro que não existem deve devolver ErrNotFound,
// nunca um sucesso silencioso com resposta nula.

func TestSKUUpdate_IDInexistente(t *testing.T) {
	uc := usecase.NewSKUUseCase(&fakeSKURepo{}, nil)

	out, err := uc.Update(context.Background(), "nao-existe", dto.UpdateSKURequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestWarehouseItemUpdate_IDInexistente(t *testing.T) {
	uc := usecase.NewWarehouseItemUseCase(&fakeWarehouseItemRepo{})

	out, err := uc.Update(context.Background(), "nao-existe", dto.UpdateWarehouseItemRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}

func TestEmployeeUpdate_IDInexistente(t *testing.T) {
	uc := usecase.NewEmployeeUseCase(&fakeEmployeeRepo{})

	out, err := uc.Update(context.Background(), "nao-existe", dto.UpdateEmployeeRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, out)
}
