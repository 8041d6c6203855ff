package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agrococo/custos-api/internal/domain/entity"
	"github.com/agrococo/custos-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação sobre PostgreSQL (usável com pool ou tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id, name, sector, position, active, base_salary,
	fgts_enabled, fgts_percent, inss_enabled, inss_percent,
	vacation_enabled, vacation_percent, vacation_bonus_enabled, vacation_bonus_percent,
	thirteenth_enabled, thirteenth_percent, rat_enabled, rat_percent,
	other_costs_enabled, other_costs_value, created_at, updated_at`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Sector, &e.Position, &e.Active, &e.BaseSalary,
		&e.FGTSEnabled, &e.FGTSPercent, &e.INSSEnabled, &e.INSSPercent,
		&e.VacationEnabled, &e.VacationPercent, &e.VacationBonusEnabled, &e.VacationBonusPercent,
		&e.ThirteenthEnabled, &e.ThirteenthPercent, &e.RATEnabled, &e.RATPercent,
		&e.OtherCostsEnabled, &e.OtherCostsValue, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste um novo funcionário.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Sector, employee.Position, employee.Active, employee.BaseSalary,
		employee.FGTSEnabled, employee.FGTSPercent, employee.INSSEnabled, employee.INSSPercent,
		employee.VacationEnabled, employee.VacationPercent, employee.VacationBonusEnabled, employee.VacationBonusPercent,
		employee.ThirteenthEnabled, employee.ThirteenthPercent, employee.RATEnabled, employee.RATPercent,
		employee.OtherCostsEnabled, employee.OtherCostsValue, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtém um funcionário por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// Update atualiza um funcionário existente.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, sector = $3, position = $4, active = $5, base_salary = $6,
		    fgts_enabled = $7, fgts_percent = $8, inss_enabled = $9, inss_percent = $10,
		    vacation_enabled = $11, vacation_percent = $12,
		    vacation_bonus_enabled = $13, vacation_bonus_percent = $14,
		    thirteenth_enabled = $15, thirteenth_percent = $16,
		    rat_enabled = $17, rat_percent = $18,
		    other_costs_enabled = $19, other_costs_value = $20, updated_at = $21
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Sector, employee.Position, employee.Active, employee.BaseSalary,
		employee.FGTSEnabled, employee.FGTSPercent, employee.INSSEnabled, employee.INSSPercent,
		employee.VacationEnabled, employee.VacationPercent, employee.VacationBonusEnabled, employee.VacationBonusPercent,
		employee.ThirteenthEnabled, employee.ThirteenthPercent, employee.RATEnabled, employee.RATPercent,
		employee.OtherCostsEnabled, employee.OtherCostsValue, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// ListActive lista todos os funcionários ativos (pool de mão de obra do motor).
func (r *EmployeeRepo) ListActive(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = true ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// List lista funcionários com paginação.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	return collectEmployees(rows)
}

// Delete elimina um funcionário por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func collectEmployees(rows pgx.Rows) ([]*entity.Employee, error) {
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
