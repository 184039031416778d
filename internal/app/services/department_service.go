package services

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/rules"
)

// Department operation names, used in logs and metrics.
const (
	OpDepartmentCreate = "department.create"
	OpDepartmentUpdate = "department.update"
	OpDepartmentDelete = "department.delete"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	base
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(logger zerolog.Logger, observer Observer, clock Clock) *DepartmentService {
	return &DepartmentService{base: newBase(logger, observer, clock, "department")}
}

// Create adds a department. The name must be unique (BR01) and valid (BR02).
func (s *DepartmentService) Create(ctx context.Context, sess repositories.Session, department *models.Department) Result {
	sameName, err := sess.Departments().FindByName(ctx, department.Name)
	if err != nil {
		return s.abort(ctx, sess, OpDepartmentCreate, err, storageFailure())
	}
	if !rules.IsUnique(sameName, department.Name,
		func(d models.Department) string { return d.Name },
		func(d models.Department) int64 { return d.ID },
	) {
		return s.reject(OpDepartmentCreate, rules.Violate(rules.DepartmentNameNotUnique))
	}

	if !rules.HasValidName(department.Name, rules.MinNameLength) {
		return s.reject(OpDepartmentCreate, rules.Violate(rules.DepartmentNameInvalid))
	}

	if err := sess.Departments().Add(ctx, department); err != nil {
		return s.abort(ctx, sess, OpDepartmentCreate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpDepartmentCreate, "")
}

// Update overwrites a department without rule checks.
func (s *DepartmentService) Update(ctx context.Context, sess repositories.Session, department *models.Department) Result {
	if err := sess.Departments().Update(ctx, department); err != nil {
		if missing(err) {
			return s.reject(OpDepartmentUpdate, rules.Violatef(rules.InvalidReference, "Department %d not found", department.ID))
		}
		return s.abort(ctx, sess, OpDepartmentUpdate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpDepartmentUpdate, "")
}

// Delete removes a department that no student (BR03) or course (BR04) references.
func (s *DepartmentService) Delete(ctx context.Context, sess repositories.Session, id int64) Result {
	students, err := sess.Students().FindByDepartment(ctx, id)
	if err != nil {
		return s.abort(ctx, sess, OpDepartmentDelete, err, storageFailure())
	}
	if len(students) > 0 {
		return s.reject(OpDepartmentDelete, rules.Violate(rules.DepartmentHasStudents))
	}

	courses, err := sess.Courses().FindByDepartment(ctx, id)
	if err != nil {
		return s.abort(ctx, sess, OpDepartmentDelete, err, storageFailure())
	}
	if len(courses) > 0 {
		return s.reject(OpDepartmentDelete, rules.Violate(rules.DepartmentHasCourses))
	}

	if err := sess.Departments().Delete(ctx, id); err != nil {
		return s.abort(ctx, sess, OpDepartmentDelete, err, storageFailure())
	}
	return s.commit(ctx, sess, OpDepartmentDelete, "")
}

// GetByID returns one department or an error wrapping apperrors.ErrResourceNotFound.
func (s *DepartmentService) GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Department, error) {
	return sess.Departments().GetByID(ctx, id)
}

// GetAll lists every department, reloading on each iteration.
func (s *DepartmentService) GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Department, error] {
	return sequence(ctx, sess.Departments().GetAll)
}
