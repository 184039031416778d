package repositories

//go:generate mockgen -destination=mocks/repositories_mock.go -package=mocks . EnrollmentRepository,Session,StudentRepository,UnitOfWork

import (
	"context"
	"fmt"

	"github.com/yigit/coursemanager/internal/app/models"
)

// DepartmentRepository exposes department persistence within a session.
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	FindByName(ctx context.Context, name string) ([]models.Department, error)
	Add(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository exposes student persistence within a session.
type StudentRepository interface {
	GetAll(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	FindByCode(ctx context.Context, code string) ([]models.Student, error)
	FindByEmail(ctx context.Context, email string) ([]models.Student, error)
	FindByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error)
	Add(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository exposes course persistence within a session.
type CourseRepository interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	FindByCode(ctx context.Context, code string) ([]models.Course, error)
	FindByDepartment(ctx context.Context, departmentID int64) ([]models.Course, error)
	Add(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// EnrollmentRepository exposes enrollment persistence within a session.
// Enrollments are keyed by (studentID, courseID).
type EnrollmentRepository interface {
	GetAll(ctx context.Context) ([]models.Enrollment, error)
	FindByStudentAndCourse(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error)
	FindByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	FindByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error)
	Add(ctx context.Context, enrollment *models.Enrollment) error
	Update(ctx context.Context, enrollment *models.Enrollment) error
	Delete(ctx context.Context, studentID, courseID int64) error
}

// Session is one unit of work. Mutations made through its repositories stay
// pending until Save commits them together; Rollback discards whatever has not
// been saved. A session is owned by a single caller and is not safe for
// concurrent use.
type Session interface {
	Departments() DepartmentRepository
	Students() StudentRepository
	Courses() CourseRepository
	Enrollments() EnrollmentRepository

	// Save commits every pending mutation atomically and returns the number of
	// affected rows.
	Save(ctx context.Context) (int, error)
	// Rollback discards pending mutations. Calling it after Save is a no-op.
	Rollback(ctx context.Context) error
}

// UnitOfWork hands out sessions.
type UnitOfWork interface {
	Begin(ctx context.Context) (Session, error)
}

// WithSession runs fn inside a fresh session and always releases it: pending
// mutations are rolled back when fn returns, errors, or panics.
func WithSession(ctx context.Context, uow UnitOfWork, fn func(Session) error) (err error) {
	sess, err := uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin session: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = sess.Rollback(ctx)
			panic(r)
		}
		if rbErr := sess.Rollback(ctx); rbErr != nil && err == nil {
			err = fmt.Errorf("failed to release session: %w", rbErr)
		}
	}()

	return fn(sess)
}
