package usecase

import (
	"context"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// CostAlertUseCase consulta e resolução dos alertas de variação de custo.
type CostAlertUseCase struct {
	repo repository.CostAlertRepository
}

// NewCostAlertUseCase constrói o caso de uso.
func NewCostAlertUseCase(repo repository.CostAlertRepository) *CostAlertUseCase {
	return &CostAlertUseCase{repo: repo}
}

// List lista alertas com filtros opcionais (SKU, status).
func (uc *CostAlertUseCase) List(ctx context.Context, skuID, status string, page dto.PageRequest) (*dto.CostAlertListResponse, error) {
	if status != "" && !entity.ValidAlertStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.CostAlertFilter{
		SKUID:  skuID,
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostAlertResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toCostAlertResponse(a))
	}
	return &dto.CostAlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus muda o status de resolução de um alerta.
func (uc *CostAlertUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateAlertStatusRequest) (*dto.CostAlertResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	alert, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	alert.Status = in.Status
	return toCostAlertResponse(alert), nil
}

func toCostAlertResponse(a *entity.CostAlert) *dto.CostAlertResponse {
	return &dto.CostAlertResponse{
		ID:               a.ID,
		CostRecordID:     a.CostRecordID,
		SKUID:            a.SKUID,
		PreviousUnitCost: a.PreviousUnitCost,
		CurrentUnitCost:  a.CurrentUnitCost,
		VariationPercent: a.VariationPercent,
		Threshold:        a.Threshold,
		Direction:        a.Direction,
		Status:           a.Status,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
