package services

import (
	"context"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/rules"
)

// Enrollment operation names.
const (
	OpEnroll      = "enrollment.enroll"
	OpAssignGrade = "enrollment.assign_grade"
	OpUpdateGrade = "enrollment.update_grade"
)

// Success messages of the enrollment lifecycle.
const (
	MsgEnrolled      = "Enrolled successfully"
	MsgGradeAssigned = "Grade assigned"
)

// EnrollmentService drives the enrollment lifecycle:
// nonexistent -> active (no grade) -> active (graded) -> finalized.
// Nothing here finalizes an enrollment or deletes one.
type EnrollmentService struct {
	base
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(logger zerolog.Logger, observer Observer, clock Clock) *EnrollmentService {
	return &EnrollmentService{base: newBase(logger, observer, clock, "enrollment")}
}

func enrollFailure() rules.Violation {
	return rules.Violatef(rules.TransactionFailed, "Enrollment failed - transaction rolled back")
}

// Enroll registers a student for a course on enrollDate. The first failing
// check wins, in this order: BR20, BR26, BR27, BR28, BR29, BR16, BR17, BR18, BR19.
func (s *EnrollmentService) Enroll(ctx context.Context, sess repositories.Session, studentID, courseID int64, enrollDate time.Time) Result {
	now := s.now()

	student, err := sess.Students().GetByID(ctx, studentID)
	if err != nil && !missing(err) {
		return s.abort(ctx, sess, OpEnroll, err, enrollFailure())
	}
	course, cerr := sess.Courses().GetByID(ctx, courseID)
	if cerr != nil && !missing(cerr) {
		return s.abort(ctx, sess, OpEnroll, cerr, enrollFailure())
	}
	if student == nil || course == nil {
		return s.reject(OpEnroll, rules.Violate(rules.InvalidReference))
	}

	if !rules.IsOfAge(student.DateOfBirth, rules.MinimumAge, now) {
		return s.reject(OpEnroll, rules.Violate(rules.UnderAge))
	}
	if course.Credits < rules.MinimumCredits {
		return s.reject(OpEnroll, rules.Violate(rules.ZeroCredits))
	}
	if !course.IsActive {
		return s.reject(OpEnroll, rules.Violate(rules.EnrollCourseInactive))
	}
	if !student.IsActive {
		return s.reject(OpEnroll, rules.Violate(rules.StudentInactive))
	}

	existing, err := sess.Enrollments().FindByStudentAndCourse(ctx, studentID, courseID)
	if err != nil && !missing(err) {
		return s.abort(ctx, sess, OpEnroll, err, enrollFailure())
	}
	if existing != nil {
		return s.reject(OpEnroll, rules.Violate(rules.DuplicateEnrollment))
	}

	held, err := sess.Enrollments().FindByStudent(ctx, studentID)
	if err != nil {
		return s.abort(ctx, sess, OpEnroll, err, enrollFailure())
	}
	if len(held) >= rules.MaxEnrollmentsPerStudent {
		return s.reject(OpEnroll, rules.Violate(rules.MaxCoursesExceeded))
	}

	if rules.IsBeforeDay(enrollDate, now) {
		return s.reject(OpEnroll, rules.Violate(rules.PastEnrollDate))
	}
	if !rules.SameDepartment(student.DepartmentID, course.DepartmentID) {
		return s.reject(OpEnroll, rules.Violate(rules.DepartmentMismatch))
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrollDate: rules.DateOnly(enrollDate),
	}
	if err := sess.Enrollments().Add(ctx, enrollment); err != nil {
		return s.abort(ctx, sess, OpEnroll, err, enrollFailure())
	}

	n, err := sess.Save(ctx)
	if err != nil {
		return s.abort(ctx, sess, OpEnroll, err, enrollFailure())
	}
	s.logger.Info().
		Int64("studentId", studentID).
		Int64("courseId", courseID).
		Int("rows", n).
		Msg("Student enrolled")
	s.observer.Committed(ctx, OpEnroll)
	return Succeeded(MsgEnrolled)
}

// AssignGrade sets the first grade: BR21, then the grading window (BR30), then range (BR22).
func (s *EnrollmentService) AssignGrade(ctx context.Context, sess repositories.Session, studentID, courseID int64, grade float64) Result {
	enrollment, res, ok := s.lookup(ctx, sess, OpAssignGrade, studentID, courseID)
	if !ok {
		return res
	}

	if !rules.WithinWindow(enrollment.EnrollDate, s.now(), rules.GradingWindowDays) {
		return s.reject(OpAssignGrade, rules.Violate(rules.GradingWindowExpired))
	}
	if !rules.InRange(grade, rules.MinGrade, rules.MaxGrade) {
		return s.reject(OpAssignGrade, rules.Violate(rules.GradeOutOfRange))
	}

	return s.setGrade(ctx, sess, OpAssignGrade, enrollment, grade, MsgGradeAssigned)
}

// UpdateGrade revises a grade: BR21, then finalization (BR23), then range (BR22).
// The grading window is not consulted here.
func (s *EnrollmentService) UpdateGrade(ctx context.Context, sess repositories.Session, studentID, courseID int64, grade float64) Result {
	enrollment, res, ok := s.lookup(ctx, sess, OpUpdateGrade, studentID, courseID)
	if !ok {
		return res
	}

	if enrollment.IsFinalized {
		return s.reject(OpUpdateGrade, rules.Violate(rules.AlreadyFinalized))
	}
	if !rules.InRange(grade, rules.MinGrade, rules.MaxGrade) {
		return s.reject(OpUpdateGrade, rules.Violate(rules.GradeOutOfRange))
	}

	return s.setGrade(ctx, sess, OpUpdateGrade, enrollment, grade, "")
}

// GetAll lists every enrollment, reloading on each iteration.
func (s *EnrollmentService) GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Enrollment, error] {
	return sequence(ctx, sess.Enrollments().GetAll)
}

func (s *EnrollmentService) lookup(ctx context.Context, sess repositories.Session, op string, studentID, courseID int64) (*models.Enrollment, Result, bool) {
	enrollment, err := sess.Enrollments().FindByStudentAndCourse(ctx, studentID, courseID)
	if missing(err) {
		return nil, s.reject(op, rules.Violate(rules.EnrollmentNotFound)), false
	}
	if err != nil {
		return nil, s.abort(ctx, sess, op, err, storageFailure()), false
	}
	return enrollment, Result{}, true
}

func (s *EnrollmentService) setGrade(ctx context.Context, sess repositories.Session, op string, enrollment *models.Enrollment, grade float64, message string) Result {
	g := models.NewGrade(grade)
	enrollment.Grade = &g
	if err := sess.Enrollments().Update(ctx, enrollment); err != nil {
		return s.abort(ctx, sess, op, err, storageFailure())
	}
	return s.commit(ctx, sess, op, message)
}
