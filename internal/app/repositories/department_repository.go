package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// DepartmentPostgresRepository handles database operations for departments
type DepartmentPostgresRepository struct {
	session *postgresSession
}

var departmentColumns = []string{"id", "name", "description"}

func scanDepartment(row pgx.Row) (models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.ID,
		&department.Name,
		&department.Description,
	)
	return department, err
}

func (r *DepartmentPostgresRepository) selectDepartments() squirrel.SelectBuilder {
	return r.session.sb.Select(departmentColumns...).From("departments").OrderBy("id")
}

// GetAll retrieves all departments
func (r *DepartmentPostgresRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	rows, err := r.session.query(ctx, r.selectDepartments())
	departments, err := collect(rows, err, scanDepartment)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentPostgresRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	row, err := r.session.queryRow(ctx, r.selectDepartments().Where(squirrel.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	department, err := scanDepartment(row)
	if err != nil {
		return nil, notFound(err, "department %d", id)
	}
	return &department, nil
}

// FindByName retrieves departments with exactly this name
func (r *DepartmentPostgresRepository) FindByName(ctx context.Context, name string) ([]models.Department, error) {
	rows, err := r.session.query(ctx, r.selectDepartments().Where(squirrel.Eq{"name": name}))
	return collect(rows, err, scanDepartment)
}

// Add inserts a department
func (r *DepartmentPostgresRepository) Add(ctx context.Context, department *models.Department) error {
	insert := r.session.sb.Insert("departments").
		Columns(departmentColumns...).
		Values(department.ID, department.Name, department.Description)

	if _, err := r.session.exec(ctx, insert); err != nil {
		return fmt.Errorf("department %d: %w", department.ID, err)
	}
	return nil
}

// Update overwrites a department
func (r *DepartmentPostgresRepository) Update(ctx context.Context, department *models.Department) error {
	update := r.session.sb.Update("departments").
		SetMap(map[string]any{
			"name":        department.Name,
			"description": department.Description,
		}).
		Where(squirrel.Eq{"id": department.ID})

	n, err := r.session.exec(ctx, update)
	if err != nil {
		return fmt.Errorf("department %d: %w", department.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("department %d: %w", department.ID, apperrors.ErrResourceNotFound)
	}
	return nil
}

// Delete removes a department. Missing rows are ignored.
func (r *DepartmentPostgresRepository) Delete(ctx context.Context, id int64) error {
	del := r.session.sb.Delete("departments").Where(squirrel.Eq{"id": id})
	if _, err := r.session.exec(ctx, del); err != nil {
		return fmt.Errorf("department %d: %w", id, err)
	}
	return nil
}
