package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// IndirectCostUseCase casos de uso do razão mensal de custos indiretos.
type IndirectCostUseCase struct {
	repo repository.IndirectCostRepository
}

// NewIndirectCostUseCase constrói o caso de uso.
func NewIndirectCostUseCase(repo repository.IndirectCostRepository) *IndirectCostUseCase {
	return &IndirectCostUseCase{repo: repo}
}

// Create lança um custo indireto no período.
func (uc *IndirectCostUseCase) Create(ctx context.Context, in dto.CreateIndirectCostRequest) (*dto.IndirectCostResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.IndirectCost{
		ID:          uuid.New().String(),
		Period:      in.Period,
		Category:    in.Category,
		Description: in.Description,
		Value:       in.Value,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toIndirectCostResponse(c), nil
}

// ListByPeriod lista os lançamentos do período e o total somado.
func (uc *IndirectCostUseCase) ListByPeriod(ctx context.Context, period string) (*dto.IndirectCostListResponse, error) {
	list, err := uc.repo.ListByPeriod(ctx, period)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndirectCostResponse, 0, len(list))
	total := decimal.Zero
	for _, c := range list {
		items = append(items, *toIndirectCostResponse(c))
		total = total.Add(c.Value)
	}
	return &dto.IndirectCostListResponse{Period: period, Items: items, Total: total}, nil
}

// Delete remove um lançamento por ID.
func (uc *IndirectCostUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toIndirectCostResponse(c *entity.IndirectCost) *dto.IndirectCostResponse {
	return &dto.IndirectCostResponse{
		ID:          c.ID,
		Period:      c.Period,
		Category:    c.Category,
		Description: c.Description,
		Value:       c.Value,
		CreatedAt:   c.CreatedAt,
	}
}
