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

// EmployeeUseCase casos de uso CRUD para funcionários e seus encargos.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create cria um funcionário.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.BaseSalary.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Employee{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Sector:     in.Sector,
		Position:   in.Position,
		Active:     in.Active,
		BaseSalary: in.BaseSalary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyCharges(e, in.EmployeeChargesRequest)
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// GetByID obtém um funcionário por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmployeeResponse(e), nil
}

// Update atualiza um funcionário (campos opcionais; encargos em bloco).
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Sector != nil {
		e.Sector = *in.Sector
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.Active != nil {
		e.Active = *in.Active
	}
	if in.BaseSalary != nil {
		if in.BaseSalary.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		e.BaseSalary = *in.BaseSalary
	}
	if in.Charges != nil {
		applyCharges(e, *in.Charges)
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toEmployeeResponse(e), nil
}

// List lista funcionários com paginação.
func (uc *EmployeeUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.EmployeeListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina um funcionário por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func applyCharges(e *entity.Employee, c dto.EmployeeChargesRequest) {
	e.FGTSEnabled = c.FGTSEnabled
	e.FGTSPercent = c.FGTSPercent
	e.INSSEnabled = c.INSSEnabled
	e.INSSPercent = c.INSSPercent
	e.VacationEnabled = c.VacationEnabled
	e.VacationPercent = c.VacationPercent
	e.VacationBonusEnabled = c.VacationBonusEnabled
	e.VacationBonusPercent = c.VacationBonusPercent
	e.ThirteenthEnabled = c.ThirteenthEnabled
	e.ThirteenthPercent = c.ThirteenthPercent
	e.RATEnabled = c.RATEnabled
	e.RATPercent = c.RATPercent
	e.OtherCostsEnabled = c.OtherCostsEnabled
	e.OtherCostsValue = c.OtherCostsValue
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Sector:     e.Sector,
		Position:   e.Position,
		Active:     e.Active,
		BaseSalary: e.BaseSalary,
		LoadedCost: e.LoadedCost(),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
