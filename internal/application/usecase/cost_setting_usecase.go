package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agrococo/custos-api/internal/application/dto"
	"github.com/agrococo/custos-api/internal/domain"
	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

// CostSettingUseCase store chave-valor tipado das configurações do motor.
type CostSettingUseCase struct {
	repo repository.CostSettingRepository
}

// NewCostSettingUseCase constrói o caso de uso.
func NewCostSettingUseCase(repo repository.CostSettingRepository) *CostSettingUseCase {
	return &CostSettingUseCase{repo: repo}
}

// List devolve todas as configurações.
func (uc *CostSettingUseCase) List(ctx context.Context) (*dto.SettingListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SettingResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSettingResponse(s))
	}
	return &dto.SettingListResponse{Items: items}, nil
}

// GetByKey obtém uma configuração pela chave.
func (uc *CostSettingUseCase) GetByKey(ctx context.Context, key string) (*dto.SettingResponse, error) {
	s, err := uc.repo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSettingResponse(s), nil
}

// Upsert cria ou atualiza uma configuração, validando o valor contra o tipo
// declarado.
func (uc *CostSettingUseCase) Upsert(ctx context.Context, key, userID string, in dto.UpsertSettingRequest) (*dto.SettingResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.CostSetting{
		Key:         key,
		Type:        in.Type,
		Value:       in.Value,
		Description: in.Description,
		UpdatedBy:   userID,
		UpdatedAt:   time.Now(),
	}
	if !settingValueMatchesType(s) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, err
	}
	return toSettingResponse(s), nil
}

// settingValueMatchesType valida a representação textual contra o tipo.
func settingValueMatchesType(s *entity.CostSetting) bool {
	switch s.Type {
	case entity.SettingTypeNumber, entity.SettingTypePercent:
		_, ok := s.DecimalValue()
		return ok
	case entity.SettingTypeBoolean:
		_, ok := s.BoolValue()
		return ok
	case entity.SettingTypeJSON:
		return json.Valid([]byte(s.Value))
	}
	return false
}

func toSettingResponse(s *entity.CostSetting) *dto.SettingResponse {
	return &dto.SettingResponse{
		Key:         s.Key,
		Type:        s.Type,
		Value:       s.Value,
		Description: s.Description,
		UpdatedBy:   s.UpdatedBy,
		UpdatedAt:   s.UpdatedAt,
	}
}
