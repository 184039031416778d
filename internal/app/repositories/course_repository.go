package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// CoursePostgresRepository handles database operations for courses
type CoursePostgresRepository struct {
	session *postgresSession
}

var courseColumns = []string{"id", "code", "title", "credits", "is_active", "department_id"}

func scanCourse(row pgx.Row) (models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Title,
		&course.Credits,
		&course.IsActive,
		&course.DepartmentID,
	)
	return course, err
}

func (r *CoursePostgresRepository) selectCourses(where squirrel.Sqlizer) squirrel.SelectBuilder {
	query := r.session.sb.Select(courseColumns...).From("courses").OrderBy("id")
	if where != nil {
		query = query.Where(where)
	}
	return query
}

func (r *CoursePostgresRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Course, error) {
	rows, err := r.session.query(ctx, r.selectCourses(where))
	courses, err := collect(rows, err, scanCourse)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetAll retrieves all courses
func (r *CoursePostgresRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	return r.list(ctx, nil)
}

// GetByID retrieves a course by ID
func (r *CoursePostgresRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	row, err := r.session.queryRow(ctx, r.selectCourses(squirrel.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, err
	}
	course, err := scanCourse(row)
	if err != nil {
		return nil, notFound(err, "course %d", id)
	}
	return &course, nil
}

// FindByCode retrieves courses with this code
func (r *CoursePostgresRepository) FindByCode(ctx context.Context, code string) ([]models.Course, error) {
	return r.list(ctx, squirrel.Eq{"code": code})
}

// FindByDepartment retrieves the courses of a department
func (r *CoursePostgresRepository) FindByDepartment(ctx context.Context, departmentID int64) ([]models.Course, error) {
	return r.list(ctx, squirrel.Eq{"department_id": departmentID})
}

// Add inserts a course
func (r *CoursePostgresRepository) Add(ctx context.Context, course *models.Course) error {
	insert := r.session.sb.Insert("courses").
		Columns(courseColumns...).
		Values(course.ID, course.Code, course.Title, course.Credits, course.IsActive, course.DepartmentID)

	if _, err := r.session.exec(ctx, insert); err != nil {
		return fmt.Errorf("course %d: %w", course.ID, err)
	}
	return nil
}

// Update overwrites a course
func (r *CoursePostgresRepository) Update(ctx context.Context, course *models.Course) error {
	update := r.session.sb.Update("courses").
		SetMap(map[string]any{
			"code":          course.Code,
			"title":         course.Title,
			"credits":       course.Credits,
			"is_active":     course.IsActive,
			"department_id": course.DepartmentID,
		}).
		Where(squirrel.Eq{"id": course.ID})

	n, err := r.session.exec(ctx, update)
	if err != nil {
		return fmt.Errorf("course %d: %w", course.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("course %d: %w", course.ID, apperrors.ErrResourceNotFound)
	}
	return nil
}

// Delete removes a course. Missing rows are ignored.
func (r *CoursePostgresRepository) Delete(ctx context.Context, id int64) error {
	del := r.session.sb.Delete("courses").Where(squirrel.Eq{"id": id})
	if _, err := r.session.exec(ctx, del); err != nil {
		return fmt.Errorf("course %d: %w", id, err)
	}
	return nil
}
