package usecase

import (
	"context"
	"encoding/json"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// CostRecordUseCase ciclo de vida dos registros de custo: listagem, consulta,
// transições draft → confirmed → closed e exclusão guardada.
type CostRecordUseCase struct {
	repo repository.CostRecordRepository
}

// NewCostRecordUseCase constrói o caso de uso.
func NewCostRecordUseCase(repo repository.CostRecordRepository) *CostRecordUseCase {
	return &CostRecordUseCase{repo: repo}
}

// GetByID obtém um registro por ID, com o detalhamento desserializado.
func (uc *CostRecordUseCase) GetByID(ctx context.Context, id string) (*dto.CostRecordResponse, error) {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return toCostRecordResponse(rec, true), nil
}

// List lista registros com filtros opcionais (SKU, período, status).
func (uc *CostRecordUseCase) List(ctx context.Context, skuID, period, status string, page dto.PageRequest) (*dto.CostRecordListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.CostRecordFilter{
		SKUID:  skuID,
		Period: period,
		Status: status,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CostRecordResponse, 0, len(list))
	for _, r := range list {
		// listagem não carrega o blob de detalhe
		items = append(items, *toCostRecordResponse(r, false))
	}
	return &dto.CostRecordListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UpdateStatus aplica uma transição de ciclo de vida. Transições são
// append-only: draft → confirmed → closed; qualquer outra é rejeitada.
func (uc *CostRecordUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateRecordStatusRequest) (*dto.CostRecordResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if !rec.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	if err := uc.repo.UpdateStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	rec.Status = in.Status
	return toCostRecordResponse(rec, false), nil
}

// Delete elimina um registro. Registros fechados são imutáveis e não podem
// ser excluídos.
func (uc *CostRecordUseCase) Delete(ctx context.Context, id string) error {
	rec, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	if rec.Status == entity.CostRecordStatusClosed {
		return domain.ErrRecordClosed
	}
	return uc.repo.Delete(ctx, id)
}

func toCostRecordResponse(r *entity.CostRecord, withDetail bool) *dto.CostRecordResponse {
	resp := &dto.CostRecordResponse{
		ID:                 r.ID,
		SKUID:              r.SKUID,
		Period:             r.Period,
		QuantityProduced:   r.QuantityProduced,
		DirectMaterialCost: r.DirectMaterialCost,
		LaborCost:          r.LaborCost,
		IndirectCost:       r.IndirectCost,
		FreightCost:        r.FreightCost,
		TaxCost:            r.TaxCost,
		WastagePercent:     r.WastagePercent,
		WastageValue:       r.WastageValue,
		TotalCost:          r.TotalCost,
		UnitCost:           r.UnitCost,
		SellingPrice:       r.SellingPrice,
		GrossMargin:        r.GrossMargin,
		GrossMarginPercent: r.GrossMarginPercent,
		Observations:       r.Observations,
		Status:             r.Status,
		CreatedBy:          r.CreatedBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
	if withDetail && len(r.Detail) > 0 {
		var detail dto.CostRecordDetail
		if err := json.Unmarshal(r.Detail, &detail); err == nil {
			resp.Detail = &detail
		}
	}
	return resp
}
