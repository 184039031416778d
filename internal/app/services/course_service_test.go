package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/rules"
)

type CourseServiceSuite struct {
	serviceSuite
	service *CourseService
}

func TestCourseServiceSuite(t *testing.T) {
	suite.Run(t, new(CourseServiceSuite))
}

func (s *CourseServiceSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewCourseService(s.logger, s.observer, fixedClock)
	s.seedDepartment(1, "Engineering")
}

func (s *CourseServiceSuite) TestCreate() {
	s.Run("creates a valid course", func() {
		c := activeCourse(1, "C1", 1)
		s.Require().True(s.service.Create(s.ctx, s.sess, &c).Success)
	})

	s.Run("duplicate code fails with BR11 before the department check", func() {
		c := activeCourse(2, "C1", 1)
		c.DepartmentID = nil
		s.requireFailure(s.service.Create(s.ctx, s.sess, &c), rules.CourseCodeNotUnique)
	})

	s.Run("department must resolve", func() {
		for _, dept := range []*int64{nil, models.Int64Ptr(0), models.Int64Ptr(9)} {
			c := activeCourse(3, "C3", 1)
			c.DepartmentID = dept
			c.Credits = 0
			s.requireFailure(s.service.Create(s.ctx, s.sess, &c), rules.CourseNoDepartment)
		}
	})

	s.Run("credits must be between one and six", func() {
		for _, credits := range []int{0, 7, -1} {
			c := activeCourse(4, "C4", 1)
			c.Credits = credits
			s.requireFailure(s.service.Create(s.ctx, s.sess, &c), rules.CourseCreditsOutOfRange)
		}
		for i, credits := range []int{1, 6} {
			c := activeCourse(int64(10+i), "B"+string(rune('0'+i)), 1)
			c.Credits = credits
			s.True(s.service.Create(s.ctx, s.sess, &c).Success)
		}
	})
}

func (s *CourseServiceSuite) TestUpdate() {
	s.seedCourse(activeCourse(1, "C1", 1))

	s.Run("zero credits blocks the update", func() {
		c := activeCourse(1, "C1", 1)
		c.Credits = 0
		s.requireFailure(s.service.Update(s.ctx, s.sess, &c), rules.CourseInactive)
	})

	s.Run("inactive flag alone does not block", func() {
		c := activeCourse(1, "C1", 1)
		c.IsActive = false
		c.Title = "Retitled"
		s.Require().True(s.service.Update(s.ctx, s.sess, &c).Success)

		found, err := s.service.GetByID(s.ctx, s.fresh(), 1)
		s.Require().NoError(err)
		s.Equal("Retitled", found.Title)
		s.False(found.IsActive)
	})

	s.Run("unknown course is an invalid reference", func() {
		c := activeCourse(9, "C9", 1)
		s.requireFailure(s.service.Update(s.ctx, s.sess, &c), rules.InvalidReference)
	})
}

func (s *CourseServiceSuite) TestDelete() {
	s.seedStudent(adultStudent(1, "S1", 1))
	s.seedCourse(activeCourse(1, "C1", 1))
	s.seedCourse(activeCourse(2, "C2", 1))
	s.seedEnrollment(models.Enrollment{StudentID: 1, CourseID: 1, EnrollDate: fixedNow})

	s.Run("enrollments block deletion", func() {
		s.requireFailure(s.service.Delete(s.ctx, s.sess, 1), rules.CourseHasEnrollments)
	})

	s.Run("course without enrollments is removed", func() {
		s.Require().True(s.service.Delete(s.ctx, s.sess, 2).Success)
		_, err := s.service.GetByID(s.ctx, s.fresh(), 2)
		s.Error(err)
	})

	s.Equal([]string{OpCourseDelete}, s.observer.commits)
}
