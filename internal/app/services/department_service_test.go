package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/rules"
)

type DepartmentServiceSuite struct {
	serviceSuite
	service *DepartmentService
}

func TestDepartmentServiceSuite(t *testing.T) {
	suite.Run(t, new(DepartmentServiceSuite))
}

func (s *DepartmentServiceSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewDepartmentService(s.logger, s.observer, fixedClock)
}

func (s *DepartmentServiceSuite) TestCreate() {
	s.Run("creates a valid department", func() {
		res := s.service.Create(s.ctx, s.sess, &models.Department{ID: 1, Name: "Computer Science", Description: models.StringPtr("CS")})
		s.Require().True(res.Success, res.Message)
		s.Equal(DefaultSuccessMessage, res.Message)

		found, err := s.fresh().Departments().GetByID(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("Computer Science", found.Name)
		s.Require().NotNil(found.Description)
		s.Equal("CS", *found.Description)
	})

	s.Run("duplicate name fails with BR01", func() {
		res := s.service.Create(s.ctx, s.sess, &models.Department{ID: 2, Name: "Computer Science"})
		s.requireFailure(res, rules.DepartmentNameNotUnique)
	})

	s.Run("invalid names fail with BR02", func() {
		for _, name := range []string{"", "   ", "IT"} {
			res := s.service.Create(s.ctx, s.sess, &models.Department{ID: 3, Name: name})
			s.requireFailure(res, rules.DepartmentNameInvalid)
		}
	})

	s.Run("uniqueness is checked before the name rule", func() {
		s.seedDepartment(4, "AB")
		res := s.service.Create(s.ctx, s.sess, &models.Department{ID: 5, Name: "AB"})
		s.requireFailure(res, rules.DepartmentNameNotUnique)
	})

	s.Run("reused id is a storage failure", func() {
		res := s.service.Create(s.ctx, s.sess, &models.Department{ID: 1, Name: "Mathematics"})
		s.requireFailure(res, rules.TransactionFailed)
	})

	s.Equal([]rules.Code{
		rules.DepartmentNameNotUnique,
		rules.DepartmentNameInvalid, rules.DepartmentNameInvalid, rules.DepartmentNameInvalid,
		rules.DepartmentNameNotUnique,
		rules.TransactionFailed,
	}, s.observer.violations)
}

func (s *DepartmentServiceSuite) TestDelete() {
	s.seedDepartment(1, "Physics")
	s.seedDepartment(2, "Chemistry")
	s.seedDepartment(3, "Biology")
	s.seedStudent(adultStudent(1, "S1", 1))
	c := activeCourse(1, "C1", 1)
	s.seedCourse(c)
	s.seedCourse(activeCourse(2, "C2", 2))

	s.Run("students are checked before courses", func() {
		s.requireFailure(s.service.Delete(s.ctx, s.sess, 1), rules.DepartmentHasStudents)
	})

	s.Run("courses block deletion", func() {
		s.requireFailure(s.service.Delete(s.ctx, s.sess, 2), rules.DepartmentHasCourses)
	})

	s.Run("unreferenced department is removed", func() {
		res := s.service.Delete(s.ctx, s.sess, 3)
		s.Require().True(res.Success, res.Message)

		remaining, err := Collect(s.service.GetAll(s.ctx, s.fresh()))
		s.Require().NoError(err)
		s.Len(remaining, 2)
	})

	s.Run("unknown department is a no-op", func() {
		s.True(s.service.Delete(s.ctx, s.sess, 99).Success)
	})
}

func (s *DepartmentServiceSuite) TestUpdate() {
	s.seedDepartment(1, "History")

	s.Run("persists without rule checks", func() {
		res := s.service.Update(s.ctx, s.sess, &models.Department{ID: 1, Name: "H"})
		s.Require().True(res.Success, res.Message)

		found, err := s.service.GetByID(s.ctx, s.fresh(), 1)
		s.Require().NoError(err)
		s.Equal("H", found.Name)
	})

	s.Run("unknown department is an invalid reference", func() {
		res := s.service.Update(s.ctx, s.sess, &models.Department{ID: 42, Name: "Ghost"})
		s.requireFailure(res, rules.InvalidReference)
	})

	s.Run("commit failure is reported as BR24", func() {
		failing := s.failingSave()
		res := s.service.Update(s.ctx, failing, &models.Department{ID: 1, Name: "Lost"})
		s.requireFailure(res, rules.TransactionFailed)
	})
}
