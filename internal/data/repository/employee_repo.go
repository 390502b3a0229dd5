package repository

import (
	"context"
	"fmt"

	"studio-site/internal/data/entity"
	"studio-site/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, employee *entity.Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEmployeeRepository(db database.PgxIface, log *zap.Logger) EmployeeRepository {
	return &employeeRepository{
		db:  db,
		log: log.With(zap.String("repository", "employee")),
	}
}

func (r *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (id, name, email, position, salary, hired_at,
		                       is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Salary,
		employee.HiredAt,
		employee.IsActive,
		employee.CreatedAt,
		employee.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create employee",
			zap.Error(err),
			zap.String("email", employee.Email),
		)
		return fmt.Errorf("create employee %s: %w", employee.Email, err)
	}

	return nil
}

func (r *employeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	query := `
		SELECT id, name, email, position, salary, hired_at, is_active,
		       created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var employee entity.Employee
	err := r.db.QueryRow(ctx, query, id).Scan(
		&employee.ID,
		&employee.Name,
		&employee.Email,
		&employee.Position,
		&employee.Salary,
		&employee.HiredAt,
		&employee.IsActive,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find employee",
			zap.Error(err),
			zap.String("employee_id", id.String()),
		)
		return nil, fmt.Errorf("find employee %s: %w", id.String(), err)
	}

	return &employee, nil
}

func (r *employeeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT id, name, email, position, salary, hired_at, is_active,
		       created_at, updated_at
		FROM employees
		ORDER BY hired_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find employees", zap.Error(err))
		return nil, fmt.Errorf("find employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		var employee entity.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.Name,
			&employee.Email,
			&employee.Position,
			&employee.Salary,
			&employee.HiredAt,
			&employee.IsActive,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to scan employee row", zap.Error(err))
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employee rows: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM employees
	`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count employees", zap.Error(err))
		return 0, fmt.Errorf("count employees: %w", err)
	}

	return count, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $2, email = $3, position = $4, salary = $5, hired_at = $6,
		    is_active = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		employee.ID,
		employee.Name,
		employee.Email,
		employee.Position,
		employee.Salary,
		employee.HiredAt,
		employee.IsActive,
		employee.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update employee",
			zap.Error(err),
			zap.String("employee_id", employee.ID.String()),
		)
		return fmt.Errorf("update employee %s: %w", employee.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s not found", employee.ID.String())
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM employees
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete employee",
			zap.Error(err),
			zap.String("employee_id", id.String()),
		)
		return fmt.Errorf("delete employee %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("employee %s not found", id.String())
	}

	return nil
}
