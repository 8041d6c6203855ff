package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	costing "github.com/agrococo/custos-api/internal/domain/costing"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DestinationUseCase casos de uso CRUD para destinos de entrega. Fórmulas de
// frete são validadas contra o parser restrito já na escrita, para que
// fórmulas quebradas sejam pegas aqui e não degradem cálculos depois.
type DestinationUseCase struct {
	repo repository.ShippingDestinationRepository
}

// NewDestinationUseCase constrói o caso de uso.
func NewDestinationUseCase(repo repository.ShippingDestinationRepository) *DestinationUseCase {
	return &DestinationUseCase{repo: repo}
}

// Create cria um destino de entrega.
func (uc *DestinationUseCase) Create(ctx context.Context, in dto.CreateDestinationRequest) (*dto.DestinationResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.FreightType == entity.FreightTypeFormula {
		if err := validateFormula(in.FreightFormula); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	d := &entity.ShippingDestination{
		ID:             uuid.New().String(),
		Name:           in.Name,
		FreightType:    in.FreightType,
		FreightValue:   in.FreightValue,
		FreightFormula: in.FreightFormula,
		ICMSPercent:    in.ICMSPercent,
		ICMSSTPercent:  in.ICMSSTPercent,
		PISPercent:     in.PISPercent,
		COFINSPercent:  in.COFINSPercent,
		IPIPercent:     in.IPIPercent,
		Active:         in.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// GetByID obtém um destino por ID.
func (uc *DestinationUseCase) GetByID(ctx context.Context, id string) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return toDestinationResponse(d), nil
}

// Update atualiza um destino (campos opcionais).
func (uc *DestinationUseCase) Update(ctx context.Context, id string, in dto.UpdateDestinationRequest) (*dto.DestinationResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.FreightType != nil {
		d.FreightType = *in.FreightType
	}
	if in.FreightValue != nil {
		d.FreightValue = *in.FreightValue
	}
	if in.FreightFormula != nil {
		d.FreightFormula = *in.FreightFormula
	}
	if d.FreightType == entity.FreightTypeFormula {
		if err := validateFormula(d.FreightFormula); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.ICMSPercent != nil {
		d.ICMSPercent = *in.ICMSPercent
	}
	if in.ICMSSTPercent != nil {
		d.ICMSSTPercent = *in.ICMSSTPercent
	}
	if in.PISPercent != nil {
		d.PISPercent = *in.PISPercent
	}
	if in.COFINSPercent != nil {
		d.COFINSPercent = *in.COFINSPercent
	}
	if in.IPIPercent != nil {
		d.IPIPercent = *in.IPIPercent
	}
	if in.Active != nil {
		d.Active = *in.Active
	}
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return toDestinationResponse(d), nil
}

// List lista destinos com paginação.
func (uc *DestinationUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.DestinationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DestinationResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDestinationResponse(d))
	}
	return &dto.DestinationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina um destino por ID.
func (uc *DestinationUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// validateFormula avalia a fórmula com valores de prova para detectar erros de
// sintaxe na escrita. Divisão por zero em runtime continua sendo tratada pelo
// motor (degrada para zero), então usamos valores não nulos aqui.
func validateFormula(formula string) error {
	_, err := costing.EvaluateFormula(formula, costing.FormulaVars{
		Weight: decimal.NewFromInt(1),
		Value:  decimal.NewFromInt(1),
	})
	return err
}

func toDestinationResponse(d *entity.ShippingDestination) *dto.DestinationResponse {
	return &dto.DestinationResponse{
		ID:             d.ID,
		Name:           d.Name,
		FreightType:    d.FreightType,
		FreightValue:   d.FreightValue,
		FreightFormula: d.FreightFormula,
		ICMSPercent:    d.ICMSPercent,
		ICMSSTPercent:  d.ICMSSTPercent,
		PISPercent:     d.PISPercent,
		COFINSPercent:  d.COFINSPercent,
		IPIPercent:     d.IPIPercent,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
