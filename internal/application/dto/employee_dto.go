package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeChargesRequest toggles e percentuais de encargos trabalhistas.
type EmployeeChargesRequest struct {
	FGTSEnabled          bool            `json:"fgts_enabled"`
	FGTSPercent          decimal.Decimal `json:"fgts_percent"`
	INSSEnabled          bool            `json:"inss_enabled"`
	INSSPercent          decimal.Decimal `json:"inss_percent"`
	VacationEnabled      bool            `json:"vacation_enabled"`
	VacationPercent      decimal.Decimal `json:"vacation_percent"`
	VacationBonusEnabled bool            `json:"vacation_bonus_enabled"`
	VacationBonusPercent decimal.Decimal `json:"vacation_bonus_percent"`
	ThirteenthEnabled    bool            `json:"thirteenth_enabled"`
	ThirteenthPercent    decimal.Decimal `json:"thirteenth_percent"`
	RATEnabled           bool            `json:"rat_enabled"`
	RATPercent           decimal.Decimal `json:"rat_percent"`
	OtherCostsEnabled    bool            `json:"other_costs_enabled"`
	OtherCostsValue      decimal.Decimal `json:"other_costs_value"`
}

// CreateEmployeeRequest entrada para criar um funcionário.
type CreateEmployeeRequest struct {
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Sector     string          `json:"sector" validate:"required,min=1,max=100"`
	Position   string          `json:"position" validate:"required,min=1,max=100"`
	Active     bool            `json:"active"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	EmployeeChargesRequest
}

// UpdateEmployeeRequest entrada para atualizar um funcionário.
type UpdateEmployeeRequest struct {
	Name       *string                 `json:"name" validate:"omitempty,min=1,max=200"`
	Sector     *string                 `json:"sector" validate:"omitempty,min=1,max=100"`
	Position   *string                 `json:"position" validate:"omitempty,min=1,max=100"`
	Active     *bool                   `json:"active"`
	BaseSalary *decimal.Decimal        `json:"base_salary"`
	Charges    *EmployeeChargesRequest `json:"charges"`
}

// EmployeeResponse saída de um funcionário, incluindo o custo carregado calculado.
type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Sector     string          `json:"sector"`
	Position   string          `json:"position"`
	Active     bool            `json:"active"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	LoadedCost decimal.Decimal `json:"loaded_cost"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// EmployeeListResponse lista paginada de funcionários.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
