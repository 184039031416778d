package services

import (
	"context"
	"iter"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/rules"
)

// Course operation names.
const (
	OpCourseCreate = "course.create"
	OpCourseUpdate = "course.update"
	OpCourseDelete = "course.delete"
)

// CourseService handles course-related operations
type CourseService struct {
	base
}

// NewCourseService creates a new course service instance
func NewCourseService(logger zerolog.Logger, observer Observer, clock Clock) *CourseService {
	return &CourseService{base: newBase(logger, observer, clock, "course")}
}

// Create adds a course: unique code (BR11), existing department (BR12), 1-6 credits (BR13).
func (s *CourseService) Create(ctx context.Context, sess repositories.Session, course *models.Course) Result {
	sameCode, err := sess.Courses().FindByCode(ctx, course.Code)
	if err != nil {
		return s.abort(ctx, sess, OpCourseCreate, err, storageFailure())
	}
	if !rules.IsUnique(sameCode, course.Code,
		func(c models.Course) string { return c.Code },
		func(c models.Course) int64 { return c.ID },
	) {
		return s.reject(OpCourseCreate, rules.Violate(rules.CourseCodeNotUnique))
	}

	if !rules.HasDepartmentReference(course.DepartmentID) {
		return s.reject(OpCourseCreate, rules.Violate(rules.CourseNoDepartment))
	}
	found, err := rules.Exists[models.Department](ctx, sess.Departments(), *course.DepartmentID)
	if err != nil {
		return s.abort(ctx, sess, OpCourseCreate, err, storageFailure())
	}
	if !found {
		return s.reject(OpCourseCreate, rules.Violate(rules.CourseNoDepartment))
	}

	if !rules.InRange(course.Credits, rules.MinimumCredits, rules.MaximumCredits) {
		return s.reject(OpCourseCreate, rules.Violate(rules.CourseCreditsOutOfRange))
	}

	if err := sess.Courses().Add(ctx, course); err != nil {
		return s.abort(ctx, sess, OpCourseCreate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpCourseCreate, "")
}

// Update overwrites a course. Zero credits marks a course as retired and
// blocks the update (BR15) even though IsActive exists separately.
func (s *CourseService) Update(ctx context.Context, sess repositories.Session, course *models.Course) Result {
	if course.Credits == 0 {
		return s.reject(OpCourseUpdate, rules.Violate(rules.CourseInactive))
	}

	if err := sess.Courses().Update(ctx, course); err != nil {
		if missing(err) {
			return s.reject(OpCourseUpdate, rules.Violatef(rules.InvalidReference, "Course %d not found", course.ID))
		}
		return s.abort(ctx, sess, OpCourseUpdate, err, storageFailure())
	}
	return s.commit(ctx, sess, OpCourseUpdate, "")
}

// Delete removes a course without enrollments (BR14).
func (s *CourseService) Delete(ctx context.Context, sess repositories.Session, id int64) Result {
	enrollments, err := sess.Enrollments().FindByCourse(ctx, id)
	if err != nil {
		return s.abort(ctx, sess, OpCourseDelete, err, storageFailure())
	}
	if len(enrollments) > 0 {
		return s.reject(OpCourseDelete, rules.Violate(rules.CourseHasEnrollments))
	}

	if err := sess.Courses().Delete(ctx, id); err != nil {
		return s.abort(ctx, sess, OpCourseDelete, err, storageFailure())
	}
	return s.commit(ctx, sess, OpCourseDelete, "")
}

// GetByID returns one course.
func (s *CourseService) GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Course, error) {
	return sess.Courses().GetByID(ctx, id)
}

// GetAll lists every course, reloading on each iteration.
func (s *CourseService) GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Course, error] {
	return sequence(ctx, sess.Courses().GetAll)
}
