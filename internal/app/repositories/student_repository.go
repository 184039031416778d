package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// StudentPostgresRepository handles database operations for students
type StudentPostgresRepository struct {
	session *postgresSession
}

// An empty email is stored as NULL so the partial unique index ignores it.
const studentEmail = "COALESCE(email, '')"

var studentColumns = []string{"id", "code", "full_name", studentEmail, "date_of_birth", "is_active", "department_id"}

func scanStudent(row pgx.Row) (models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.Code,
		&student.FullName,
		&student.Email,
		&student.DateOfBirth,
		&student.IsActive,
		&student.DepartmentID,
	)
	return student, err
}

// selectStudents builds the ordered student listing, filtered by where when set.
func (r *StudentPostgresRepository) selectStudents(where squirrel.Sqlizer) squirrel.SelectBuilder {
	query := r.session.sb.Select(studentColumns...).From("students").OrderBy("id")
	if where != nil {
		query = query.Where(where)
	}
	return query
}

func (r *StudentPostgresRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Student, error) {
	rows, err := r.session.query(ctx, r.selectStudents(where))
	students, err := collect(rows, err, scanStudent)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetAll retrieves all students
func (r *StudentPostgresRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	return r.list(ctx, nil)
}

// GetByID retrieves a student by ID
func (r *StudentPostgresRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	row, err := r.session.queryRow(ctx, r.selectStudents(squirrel.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	student, err := scanStudent(row)
	if err != nil {
		return nil, notFound(err, "student %d", id)
	}
	return &student, nil
}

// FindByCode retrieves students with this code
func (r *StudentPostgresRepository) FindByCode(ctx context.Context, code string) ([]models.Student, error) {
	return r.list(ctx, squirrel.Eq{"code": code})
}

// FindByEmail retrieves students with this email
func (r *StudentPostgresRepository) FindByEmail(ctx context.Context, email string) ([]models.Student, error) {
	return r.list(ctx, squirrel.Eq{studentEmail: email})
}

// FindByDepartment retrieves the students of a department
func (r *StudentPostgresRepository) FindByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error) {
	return r.list(ctx, squirrel.Eq{"department_id": departmentID})
}

func nullIfEmpty(s string) squirrel.Sqlizer {
	return squirrel.Expr("NULLIF(?, '')", s)
}

// Add inserts a student
func (r *StudentPostgresRepository) Add(ctx context.Context, student *models.Student) error {
	insert := r.session.sb.Insert("students").
		Columns("id", "code", "full_name", "email", "date_of_birth", "is_active", "department_id").
		Values(student.ID, student.Code, student.FullName, nullIfEmpty(student.Email),
			student.DateOfBirth, student.IsActive, student.DepartmentID)

	if _, err := r.session.exec(ctx, insert); err != nil {
		return fmt.Errorf("student %d: %w", student.ID, err)
	}
	return nil
}

// Update overwrites a student
func (r *StudentPostgresRepository) Update(ctx context.Context, student *models.Student) error {
	update := r.session.sb.Update("students").
		SetMap(map[string]any{
			"code":          student.Code,
			"full_name":     student.FullName,
			"email":         nullIfEmpty(student.Email),
			"date_of_birth": student.DateOfBirth,
			"is_active":     student.IsActive,
			"department_id": student.DepartmentID,
		}).
		Where(squirrel.Eq{"id": student.ID})

	n, err := r.session.exec(ctx, update)
	if err != nil {
		return fmt.Errorf("student %d: %w", student.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("student %d: %w", student.ID, apperrors.ErrResourceNotFound)
	}
	return nil
}

// Delete removes a student. Missing rows are ignored.
func (r *StudentPostgresRepository) Delete(ctx context.Context, id int64) error {
	del := r.session.sb.Delete("students").Where(squirrel.Eq{"id": id})
	if _, err := r.session.exec(ctx, del); err != nil {
		return fmt.Errorf("student %d: %w", id, err)
	}
	return nil
}
