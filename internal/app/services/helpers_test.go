package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/repositories/mocks"
	"github.com/yigit/coursemanager/internal/app/rules"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

var errStorageDown = errors.New("storage down")

// recordingObserver keeps every notification for assertions.
type recordingObserver struct {
	violations []rules.Code
	commits    []string
}

func (o *recordingObserver) RuleViolated(_ string, code rules.Code) {
	o.violations = append(o.violations, code)
}

func (o *recordingObserver) Committed(_ context.Context, operation string) {
	o.commits = append(o.commits, operation)
}

// serviceSuite gives each test a fresh memory store, an open session and a
// pinned clock.
type serviceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *repositories.MemoryStore
	sess     repositories.Session
	observer *recordingObserver
	logger   zerolog.Logger
}

func (s *serviceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = repositories.NewMemoryStore()
	s.observer = &recordingObserver{}
	s.logger = zerolog.Nop()

	sess, err := s.store.Begin(s.ctx)
	s.Require().NoError(err)
	s.sess = sess
}

func (s *serviceSuite) TearDownTest() {
	s.Require().NoError(s.sess.Rollback(s.ctx))
}

// seed writes entities straight to storage, bypassing every rule.
func (s *serviceSuite) seed(fn func(repositories.Session) error) {
	err := repositories.WithSession(s.ctx, s.store, func(sess repositories.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		_, err := sess.Save(s.ctx)
		return err
	})
	s.Require().NoError(err)
}

func (s *serviceSuite) seedDepartment(id int64, name string) {
	s.seed(func(sess repositories.Session) error {
		return sess.Departments().Add(s.ctx, &models.Department{ID: id, Name: name})
	})
}

func (s *serviceSuite) seedStudent(st models.Student) {
	s.seed(func(sess repositories.Session) error {
		return sess.Students().Add(s.ctx, &st)
	})
}

func (s *serviceSuite) seedCourse(c models.Course) {
	s.seed(func(sess repositories.Session) error {
		return sess.Courses().Add(s.ctx, &c)
	})
}

func (s *serviceSuite) seedEnrollment(e models.Enrollment) {
	s.seed(func(sess repositories.Session) error {
		return sess.Enrollments().Add(s.ctx, &e)
	})
}

// passthrough returns a mock session whose department, student and course
// repositories are the suite session's own.
func (s *serviceSuite) passthrough(ctrl *gomock.Controller) *mocks.MockSession {
	sess := mocks.NewMockSession(ctrl)
	sess.EXPECT().Departments().DoAndReturn(s.sess.Departments).AnyTimes()
	sess.EXPECT().Students().DoAndReturn(s.sess.Students).AnyTimes()
	sess.EXPECT().Courses().DoAndReturn(s.sess.Courses).AnyTimes()
	return sess
}

// failingSave behaves like the suite session except that Save fails. The
// rollback that follows must reach the real session exactly once.
func (s *serviceSuite) failingSave() repositories.Session {
	sess := s.passthrough(gomock.NewController(s.T()))
	sess.EXPECT().Enrollments().DoAndReturn(s.sess.Enrollments).AnyTimes()
	sess.EXPECT().Save(gomock.Any()).Return(0, errStorageDown)
	sess.EXPECT().Rollback(gomock.Any()).DoAndReturn(s.sess.Rollback)
	return sess
}

// brokenEnrollments fails every enrollment listing. Pair lookups still reach
// the suite session.
func (s *serviceSuite) brokenEnrollments() repositories.Session {
	ctrl := gomock.NewController(s.T())
	real := s.sess.Enrollments()

	enrollments := mocks.NewMockEnrollmentRepository(ctrl)
	enrollments.EXPECT().FindByStudentAndCourse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(real.FindByStudentAndCourse).AnyTimes()
	enrollments.EXPECT().FindByStudent(gomock.Any(), gomock.Any()).Return(nil, errStorageDown).AnyTimes()
	enrollments.EXPECT().GetAll(gomock.Any()).Return(nil, errStorageDown).AnyTimes()

	sess := s.passthrough(ctrl)
	sess.EXPECT().Enrollments().Return(enrollments).AnyTimes()
	sess.EXPECT().Rollback(gomock.Any()).DoAndReturn(s.sess.Rollback).AnyTimes()
	return sess
}

// fresh opens a second session to observe committed state only.
func (s *serviceSuite) fresh() repositories.Session {
	sess, err := s.store.Begin(s.ctx)
	s.Require().NoError(err)
	return sess
}

func (s *serviceSuite) requireFailure(res Result, code rules.Code) {
	s.Require().False(res.Success, "expected %s, got success: %s", code, res.Message)
	s.Equal(code, res.Code, res.Message)
	s.Contains(res.Message, string(code)+": ")
}

func adultStudent(id int64, code string, departmentID int64) models.Student {
	st := models.NewStudent(id, code, "Student "+code)
	st.DateOfBirth = fixedNow.AddDate(-20, 0, 0)
	st.DepartmentID = models.Int64Ptr(departmentID)
	return st
}

func activeCourse(id int64, code string, departmentID int64) models.Course {
	c := models.NewCourse(id, code, "Course "+code, 3)
	c.DepartmentID = models.Int64Ptr(departmentID)
	return c
}
