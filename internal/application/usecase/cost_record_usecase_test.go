package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/application/usecase"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// ── fake em memória ───────────────────────────────────────────────────────────

type fakeRecordRepo struct {
	repository.CostRecordRepository
	records map[string]*entity.CostRecord
	deleted []string
}

func (f *fakeRecordRepo) GetByID(_ context.Context, id string) (*entity.CostRecord, error) {
	return f.records[id], nil
}

func (f *fakeRecordRepo) UpdateStatus(_ context.Context, id, status string) error {
	f.records[id].Status = status
	return nil
}

func (f *fakeRecordRepo) Delete(_ context.Context, id string) error {
	delete(f.records, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func recordWithStatus(id, status string) *entity.CostRecord {
	return &entity.CostRecord{
		ID:               id,
		SKUID:            "sku-1",
		Period:           "2026-08",
		QuantityProduced: decimal.NewFromInt(100),
		TotalCost:        decimal.NewFromInt(5000),
		UnitCost:         decimal.NewFromInt(50),
		Status:           status,
	}
}

// ── transições de ciclo de vida ───────────────────────────────────────────────

func TestUpdateStatus_DraftParaConfirmed(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusDraft),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	out, err := uc.UpdateStatus(context.Background(), "rec-1",
		dto.UpdateRecordStatusRequest{Status: entity.CostRecordStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.CostRecordStatusConfirmed, out.Status)
}

func TestUpdateStatus_ConfirmedParaClosed(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusConfirmed),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	out, err := uc.UpdateStatus(context.Background(), "rec-1",
		dto.UpdateRecordStatusRequest{Status: entity.CostRecordStatusClosed})
	require.NoError(t, err)
	assert.Equal(t, entity.CostRecordStatusClosed, out.Status)
}

func TestUpdateStatus_DraftParaClosed_TransicaoInvalida(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusDraft),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	_, err := uc.UpdateStatus(context.Background(), "rec-1",
		dto.UpdateRecordStatusRequest{Status: entity.CostRecordStatusClosed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"draft não pode pular direto para closed")
	assert.Equal(t, entity.CostRecordStatusDraft, repo.records["rec-1"].Status,
		"o status persistido não deve mudar")
}

func TestUpdateStatus_ClosedNaoRegride(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusClosed),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	_, err := uc.UpdateStatus(context.Background(), "rec-1",
		dto.UpdateRecordStatusRequest{Status: entity.CostRecordStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_StatusDesconhecido_EntradaInvalida(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{}}
	uc := usecase.NewCostRecordUseCase(repo)

	_, err := uc.UpdateStatus(context.Background(), "rec-1",
		dto.UpdateRecordStatusRequest{Status: "arquivado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_RegistroInexistente(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{}}
	uc := usecase.NewCostRecordUseCase(repo)

	_, err := uc.UpdateStatus(context.Background(), "nao-existe",
		dto.UpdateRecordStatusRequest{Status: entity.CostRecordStatusConfirmed})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── exclusão guardada ─────────────────────────────────────────────────────────

func TestDelete_DraftPodeSerExcluido(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusDraft),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), "rec-1"))
	assert.Contains(t, repo.deleted, "rec-1")
}

func TestDelete_ClosedImutavel(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{
		"rec-1": recordWithStatus("rec-1", entity.CostRecordStatusClosed),
	}}
	uc := usecase.NewCostRecordUseCase(repo)

	err := uc.Delete(context.Background(), "rec-1")
	assert.ErrorIs(t, err, domain.ErrRecordClosed,
		"registro fechado não pode ser excluído")
	assert.Empty(t, repo.deleted)
}

func TestDelete_RegistroInexistente(t *testing.T) {
	repo := &fakeRecordRepo{records: map[string]*entity.CostRecord{}}
	uc := usecase.NewCostRecordUseCase(repo)

	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
