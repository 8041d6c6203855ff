package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// SKUUseCase casos de uso CRUD para SKUs e suas fichas técnicas (BOM).
type SKUUseCase struct {
	repo    repository.SKURepository
	bomRepo repository.BOMItemRepository
}

// NewSKUUseCase constrói o caso de uso.
func NewSKUUseCase(repo repository.SKURepository, bomRepo repository.BOMItemRepository) *SKUUseCase {
	return &SKUUseCase{repo: repo, bomRepo: bomRepo}
}

// Create cria um novo SKU. Código é único.
func (uc *SKUUseCase) Create(ctx context.Context, in dto.CreateSKURequest) (*dto.SKUResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(ctx, in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	sku := &entity.SKU{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Description:    in.Description,
		PackageWeight:  in.PackageWeight,
		ShelfLifeDays:  in.ShelfLifeDays,
		SuggestedPrice: in.SuggestedPrice,
		CurrentStock:   in.CurrentStock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// GetByID obtém um SKU por ID.
func (uc *SKUUseCase) GetByID(ctx context.Context, id string) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, nil
	}
	return toSKUResponse(sku), nil
}

// Update atualiza um SKU (campos opcionais).
func (uc *SKUUseCase) Update(ctx context.Context, id string, in dto.UpdateSKURequest) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		sku.Description = *in.Description
	}
	if in.PackageWeight != nil {
		sku.PackageWeight = *in.PackageWeight
	}
	if in.ShelfLifeDays != nil {
		sku.ShelfLifeDays = *in.ShelfLifeDays
	}
	if in.SuggestedPrice != nil {
		sku.SuggestedPrice = *in.SuggestedPrice
	}
	if in.CurrentStock != nil {
		sku.CurrentStock = *in.CurrentStock
	}
	sku.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sku); err != nil {
		return nil, err
	}
	return toSKUResponse(sku), nil
}

// List lista SKUs com paginação.
func (uc *SKUUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.SKUListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSKUResponse(s))
	}
	return &dto.SKUListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina um SKU por ID.
func (uc *SKUUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// AddBOMItem adiciona uma linha à ficha técnica do SKU.
func (uc *SKUUseCase) AddBOMItem(ctx context.Context, skuID string, in dto.CreateBOMItemRequest) (*dto.BOMItemResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	sku, err := uc.repo.GetByID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	item := &entity.BOMItem{
		ID:              uuid.New().String(),
		SKUID:           skuID,
		WarehouseItemID: in.WarehouseItemID,
		QuantityPerUnit: in.QuantityPerUnit,
		Unit:            in.Unit,
		WastePercent:    in.WastePercent,
		Optional:        in.Optional,
		CreatedAt:       time.Now(),
	}
	if err := uc.bomRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toBOMItemResponse(item), nil
}

// ListBOM devolve a ficha técnica completa do SKU.
func (uc *SKUUseCase) ListBOM(ctx context.Context, skuID string) (*dto.BOMListResponse, error) {
	sku, err := uc.repo.GetByID(ctx, skuID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.bomRepo.ListBySKU(ctx, skuID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BOMItemResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, *toBOMItemResponse(l))
	}
	return &dto.BOMListResponse{SKUID: skuID, Items: items}, nil
}

// DeleteBOMItem remove uma linha da ficha técnica.
func (uc *SKUUseCase) DeleteBOMItem(ctx context.Context, id string) error {
	return uc.bomRepo.Delete(ctx, id)
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	return &dto.SKUResponse{
		ID:             s.ID,
		Code:           s.Code,
		Description:    s.Description,
		PackageWeight:  s.PackageWeight,
		ShelfLifeDays:  s.ShelfLifeDays,
		SuggestedPrice: s.SuggestedPrice,
		CurrentStock:   s.CurrentStock,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toBOMItemResponse(b *entity.BOMItem) *dto.BOMItemResponse {
	return &dto.BOMItemResponse{
		ID:              b.ID,
		SKUID:           b.SKUID,
		WarehouseItemID: b.WarehouseItemID,
		QuantityPerUnit: b.QuantityPerUnit,
		Unit:            b.Unit,
		WastePercent:    b.WastePercent,
		Optional:        b.Optional,
		CreatedAt:       b.CreatedAt,
	}
}
