package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// EnrollmentPostgresRepository handles database operations for enrollments
type EnrollmentPostgresRepository struct {
	session *postgresSession
}

// Grades travel as float8 and are rounded back to hundredths on the way in.
var enrollmentColumns = []string{"student_id", "course_id", "enroll_date", "grade::float8", "is_finalized"}

func scanEnrollment(row pgx.Row) (models.Enrollment, error) {
	var (
		enrollment models.Enrollment
		grade      *float64
	)
	err := row.Scan(
		&enrollment.StudentID,
		&enrollment.CourseID,
		&enrollment.EnrollDate,
		&grade,
		&enrollment.IsFinalized,
	)
	if grade != nil {
		g := models.NewGrade(*grade)
		enrollment.Grade = &g
	}
	return enrollment, err
}

func gradeParam(g *models.Grade) squirrel.Sqlizer {
	var v *float64
	if g != nil {
		f := g.Float64()
		v = &f
	}
	return squirrel.Expr("?::float8", v)
}

func pairKey(studentID, courseID int64) squirrel.Eq {
	return squirrel.Eq{"student_id": studentID, "course_id": courseID}
}

func (r *EnrollmentPostgresRepository) selectEnrollments(where squirrel.Sqlizer) squirrel.SelectBuilder {
	query := r.session.sb.Select(enrollmentColumns...).From("enrollments").OrderBy("student_id", "course_id")
	if where != nil {
		query = query.Where(where)
	}
	return query
}

func (r *EnrollmentPostgresRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]models.Enrollment, error) {
	rows, err := r.session.query(ctx, r.selectEnrollments(where))
	enrollments, err := collect(rows, err, scanEnrollment)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}
	return enrollments, nil
}

// GetAll retrieves all enrollments
func (r *EnrollmentPostgresRepository) GetAll(ctx context.Context) ([]models.Enrollment, error) {
	return r.list(ctx, nil)
}

// FindByStudentAndCourse retrieves the enrollment for one pair
func (r *EnrollmentPostgresRepository) FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	row, err := r.session.queryRow(ctx, r.selectEnrollments(pairKey(studentID, courseID)).Limit(1))
	if err != nil {
		return nil, err
	}
	enrollment, err := scanEnrollment(row)
	if err != nil {
		return nil, notFound(err, "enrollment (%d, %d)", studentID, courseID)
	}
	return &enrollment, nil
}

// FindByStudent retrieves the enrollments of a student
func (r *EnrollmentPostgresRepository) FindByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID})
}

// FindByCourse retrieves the enrollments of a course
func (r *EnrollmentPostgresRepository) FindByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	return r.list(ctx, squirrel.Eq{"course_id": courseID})
}

// Add inserts an enrollment
func (r *EnrollmentPostgresRepository) Add(ctx context.Context, enrollment *models.Enrollment) error {
	insert := r.session.sb.Insert("enrollments").
		Columns("student_id", "course_id", "enroll_date", "grade", "is_finalized").
		Values(enrollment.StudentID, enrollment.CourseID, enrollment.EnrollDate,
			gradeParam(enrollment.Grade), enrollment.IsFinalized)

	if _, err := r.session.exec(ctx, insert); err != nil {
		return fmt.Errorf("enrollment (%d, %d): %w", enrollment.StudentID, enrollment.CourseID, err)
	}
	return nil
}

// Update overwrites the mutable columns of an enrollment
func (r *EnrollmentPostgresRepository) Update(ctx context.Context, enrollment *models.Enrollment) error {
	update := r.session.sb.Update("enrollments").
		SetMap(map[string]any{
			"enroll_date":  enrollment.EnrollDate,
			"grade":        gradeParam(enrollment.Grade),
			"is_finalized": enrollment.IsFinalized,
		}).
		Where(pairKey(enrollment.StudentID, enrollment.CourseID))

	n, err := r.session.exec(ctx, update)
	if err != nil {
		return fmt.Errorf("enrollment (%d, %d): %w", enrollment.StudentID, enrollment.CourseID, err)
	}
	if n == 0 {
		return fmt.Errorf("enrollment (%d, %d): %w", enrollment.StudentID, enrollment.CourseID, apperrors.ErrResourceNotFound)
	}
	return nil
}

// Delete removes an enrollment. Missing rows are ignored.
func (r *EnrollmentPostgresRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	del := r.session.sb.Delete("enrollments").Where(pairKey(studentID, courseID))
	if _, err := r.session.exec(ctx, del); err != nil {
		return fmt.Errorf("enrollment (%d, %d): %w", studentID, courseID, err)
	}
	return nil
}
