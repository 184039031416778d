package services

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/rules"
)

// Student operation names.
const (
	OpStudentCreate = "student.create"
	OpStudentUpdate = "student.update"
	OpStudentDelete = "student.delete"
)

// StudentService handles student-related operations
type StudentService struct {
	base
}

// NewStudentService creates a new student service instance
func NewStudentService(logger zerolog.Logger, observer Observer, clock Clock) *StudentService {
	return &StudentService{base: newBase(logger, observer, clock, "student")}
}

func studentCode(st models.Student) string  { return st.Code }
func studentEmail(st models.Student) string { return st.Email }
func studentID(st models.Student) int64     { return st.ID }

// Create adds a student. Checks run in order: code uniqueness (BR05), department
// reference (BR06), full name (BR07-08), email uniqueness when given (BR09).
func (s *StudentService) Create(ctx context.Context, sess repositories.Session, student *models.Student) Result {
	sameCode, err := sess.Students().FindByCode(ctx, student.Code)
	if err != nil {
		return s.abort(ctx, sess, OpStudentCreate, err, storageFailure())
	}
	if !rules.IsUnique(sameCode, student.Code, studentCode, studentID) {
		return s.reject(OpStudentCreate, rules.Violate(rules.StudentCodeNotUnique))
	}

	if !rules.HasDepartmentReference(student.DepartmentID) {
		return s.reject(OpStudentCreate, rules.Violate(rules.StudentNoDepartment))
	}
	found, err := rules.Exists[models.Department](ctx, sess.Departments(), *student.DepartmentID)
	if err != nil {
		return s.abort(ctx, sess, OpStudentCreate, err, storageFailure())
	}
	if !found {
		return s.reject(OpStudentCreate, rules.Violate(rules.StudentNoDepartment))
	}

	if !rules.HasValidName(student.FullName, rules.MinNameLength) {
		return s.reject(OpStudentCreate, rules.Violate(rules.StudentNameInvalid))
	}

	if student.Email != "" {
		sameEmail, err := sess.Students().FindByEmail(ctx, student.Email)
		if err != nil {
			return s.abort(ctx, sess, OpStudentCreate, err, storageFailure())
		}
		if !rules.IsUnique(sameEmail, student.Email, studentEmail, studentID) {
			return s.reject(OpStudentCreate, rules.Violate(rules.StudentEmailNotUnique))
		}
	}

	if err := sess.Students().Add(ctx, student); err != nil {
		return s.abort(ctx, sess, OpStudentCreate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpStudentCreate, "")
}

// Update overwrites a student without rule checks. Storage constraints still apply.
func (s *StudentService) Update(ctx context.Context, sess repositories.Session, student *models.Student) Result {
	if err := sess.Students().Update(ctx, student); err != nil {
		if missing(err) {
			return s.reject(OpStudentUpdate, rules.Violatef(rules.InvalidReference, "Student %d not found", student.ID))
		}
		return s.abort(ctx, sess, OpStudentUpdate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpStudentUpdate, "")
}

// Delete removes a student without enrollments (BR10).
func (s *StudentService) Delete(ctx context.Context, sess repositories.Session, id int64) Result {
	enrollments, err := sess.Enrollments().FindByStudent(ctx, id)
	if err != nil {
		return s.abort(ctx, sess, OpStudentDelete, err, storageFailure())
	}
	if len(enrollments) > 0 {
		return s.reject(OpStudentDelete, rules.Violate(rules.StudentHasEnrollments))
	}

	if err := sess.Students().Delete(ctx, id); err != nil {
		return s.abort(ctx, sess, OpStudentDelete, err, storageFailure())
	}
	return s.commit(ctx, sess, OpStudentDelete, "")
}

// GetByID returns one student.
func (s *StudentService) GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Student, error) {
	return sess.Students().GetByID(ctx, id)
}

// GetAll lists every student, reloading on each iteration.
func (s *StudentService) GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Student, error] {
	return sequence(ctx, sess.Students().GetAll)
}
