package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/rules"
)

type EnrollmentServiceSuite struct {
	serviceSuite
	service *EnrollmentService
}

func TestEnrollmentServiceSuite(t *testing.T) {
	suite.Run(t, new(EnrollmentServiceSuite))
}

func (s *EnrollmentServiceSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewEnrollmentService(s.logger, s.observer, fixedClock)

	s.seedDepartment(1, "IT")
	s.seedDepartment(2, "Arts")
	s.seedStudent(adultStudent(1, "S1", 1))
	s.seedCourse(activeCourse(1, "C1", 1))
}

func (s *EnrollmentServiceSuite) enrollments() []models.Enrollment {
	all, err := Collect(s.service.GetAll(s.ctx, s.fresh()))
	s.Require().NoError(err)
	return all
}

// TestScenarios covers the reference scenarios end to end.
func (s *EnrollmentServiceSuite) TestScenarios() {
	s.Run("A: eligible student enrolls today", func() {
		res := s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow)
		s.Require().True(res.Success, res.Message)
		s.Equal(MsgEnrolled, res.Message)

		all := s.enrollments()
		s.Require().Len(all, 1)
		s.Nil(all[0].Grade)
		s.False(all[0].IsFinalized)
		s.Equal(rules.DateOnly(fixedNow), all[0].EnrollDate)
		s.Equal([]string{OpEnroll}, s.observer.commits)
	})

	s.Run("B: seventeen year old is rejected", func() {
		minor := models.NewStudent(2, "S2", "Young Student")
		minor.DateOfBirth = fixedNow.AddDate(-17, 0, 0)
		minor.DepartmentID = models.Int64Ptr(1)
		s.seedStudent(minor)

		res := s.service.Enroll(s.ctx, s.sess, 2, 1, fixedNow)
		s.requireFailure(res, rules.UnderAge)
	})

	s.Run("C: grading window of 31 days has expired", func() {
		s.seedStudent(adultStudent(3, "S3", 1))
		s.seedEnrollment(models.Enrollment{StudentID: 3, CourseID: 1, EnrollDate: fixedNow.AddDate(0, 0, -31)})

		res := s.service.AssignGrade(s.ctx, s.sess, 3, 1, 8.0)
		s.requireFailure(res, rules.GradingWindowExpired)
	})

	s.Run("D: finalized grade cannot change", func() {
		s.seedStudent(adultStudent(4, "S4", 1))
		g := models.NewGrade(6)
		s.seedEnrollment(models.Enrollment{StudentID: 4, CourseID: 1, EnrollDate: fixedNow, Grade: &g, IsFinalized: true})

		for _, grade := range []float64{5, 0, 10, 42, -1} {
			res := s.service.UpdateGrade(s.ctx, s.sess, 4, 1, grade)
			s.requireFailure(res, rules.AlreadyFinalized)
		}
	})

	s.Run("E: departments must match", func() {
		s.seedCourse(activeCourse(2, "C2", 2))

		res := s.service.Enroll(s.ctx, s.sess, 1, 2, fixedNow)
		s.requireFailure(res, rules.DepartmentMismatch)
	})
}

// TestEnrollRules checks each rule of the enroll chain on its own.
func (s *EnrollmentServiceSuite) TestEnrollRules() {
	s.Run("unknown student or course", func() {
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 99, 1, fixedNow), rules.InvalidReference)
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 99, fixedNow), rules.InvalidReference)
	})

	s.Run("eighteenth birthday today is old enough", func() {
		st := models.NewStudent(10, "S10", "Birthday Student")
		st.DateOfBirth = fixedNow.AddDate(-18, 0, 0)
		st.DepartmentID = models.Int64Ptr(1)
		s.seedStudent(st)

		res := s.service.Enroll(s.ctx, s.sess, 10, 1, fixedNow)
		s.True(res.Success, res.Message)
	})

	s.Run("course without credits", func() {
		c := activeCourse(10, "C10", 1)
		c.Credits = 0
		s.seedCourse(c)
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 10, fixedNow), rules.ZeroCredits)
	})

	s.Run("inactive course", func() {
		c := activeCourse(11, "C11", 1)
		c.IsActive = false
		s.seedCourse(c)
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 11, fixedNow), rules.EnrollCourseInactive)
	})

	s.Run("inactive student", func() {
		st := adultStudent(11, "S11", 1)
		st.IsActive = false
		s.seedStudent(st)
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 11, 1, fixedNow), rules.StudentInactive)
	})

	s.Run("enroll date in the past", func() {
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow.AddDate(0, 0, -1)), rules.PastEnrollDate)
	})

	s.Run("earlier time on the same day is accepted", func() {
		st := adultStudent(12, "S12", 1)
		s.seedStudent(st)
		morning := rules.DateOnly(fixedNow)
		res := s.service.Enroll(s.ctx, s.sess, 12, 1, morning)
		s.True(res.Success, res.Message)
	})

	s.Run("both departments absent counts as matching", func() {
		st := adultStudent(13, "S13", 1)
		st.DepartmentID = nil
		s.seedStudent(st)
		c := activeCourse(13, "C13", 1)
		c.DepartmentID = nil
		s.seedCourse(c)

		res := s.service.Enroll(s.ctx, s.sess, 13, 13, fixedNow)
		s.True(res.Success, res.Message)
	})

	s.Run("one absent department is a mismatch", func() {
		st := adultStudent(14, "S14", 1)
		st.DepartmentID = nil
		s.seedStudent(st)
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 14, 1, fixedNow), rules.DepartmentMismatch)
	})
}

// TestEnrollIdempotenceBoundary checks that a repeated enroll fails with BR16.
func (s *EnrollmentServiceSuite) TestEnrollIdempotenceBoundary() {
	first := s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow)
	s.Require().True(first.Success, first.Message)

	second := s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow)
	s.requireFailure(second, rules.DuplicateEnrollment)
	s.Len(s.enrollments(), 1)
}

// TestMaxCourses checks BR17 fires for a full student whatever the course.
func (s *EnrollmentServiceSuite) TestMaxCourses() {
	for id := int64(20); id < 25; id++ {
		s.seedCourse(activeCourse(id, "C"+string(rune('A'+id-20)), 1))
		s.seedEnrollment(models.Enrollment{StudentID: 1, CourseID: id, EnrollDate: fixedNow})
	}

	s.Run("course in the same department", func() {
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow), rules.MaxCoursesExceeded)
	})

	s.Run("course in another department with a past date", func() {
		s.seedCourse(activeCourse(30, "C30", 2))
		s.requireFailure(s.service.Enroll(s.ctx, s.sess, 1, 30, fixedNow.AddDate(0, 0, -3)), rules.MaxCoursesExceeded)
	})
}

// TestEnrollRuleOrder checks which code wins when several rules fail at once.
func (s *EnrollmentServiceSuite) TestEnrollRuleOrder() {
	minor := models.NewStudent(40, "S40", "Minor Inactive")
	minor.DateOfBirth = fixedNow.AddDate(-16, 0, 0)
	minor.IsActive = false
	minor.DepartmentID = models.Int64Ptr(2)
	s.seedStudent(minor)

	broken := activeCourse(40, "C40", 1)
	broken.Credits = 0
	broken.IsActive = false
	s.seedCourse(broken)

	inactive := activeCourse(41, "C41", 1)
	inactive.IsActive = false
	s.seedCourse(inactive)

	inactiveAdult := adultStudent(41, "S41", 2)
	inactiveAdult.IsActive = false
	s.seedStudent(inactiveAdult)

	cases := []struct {
		name      string
		studentID int64
		courseID  int64
		want      rules.Code
	}{
		{"missing course beats under age", 40, 99, rules.InvalidReference},
		{"under age beats zero credits", 40, 40, rules.UnderAge},
		{"zero credits beats inactive course", 41, 40, rules.ZeroCredits},
		{"inactive course beats inactive student", 41, 41, rules.EnrollCourseInactive},
		{"inactive student beats department mismatch", 41, 1, rules.StudentInactive},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			res := s.service.Enroll(s.ctx, s.sess, tc.studentID, tc.courseID, fixedNow.AddDate(0, 0, -5))
			s.requireFailure(res, tc.want)
		})
	}

	s.Run("duplicate beats past date", func() {
		s.seedEnrollment(models.Enrollment{StudentID: 1, CourseID: 1, EnrollDate: fixedNow})
		res := s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow.AddDate(0, 0, -5))
		s.requireFailure(res, rules.DuplicateEnrollment)
	})

	s.Run("past date beats department mismatch", func() {
		s.seedCourse(activeCourse(42, "C42", 2))
		res := s.service.Enroll(s.ctx, s.sess, 1, 42, fixedNow.AddDate(0, 0, -5))
		s.requireFailure(res, rules.PastEnrollDate)
	})
}

// TestEnrollStorageFailure checks BR24 and that nothing is left behind.
func (s *EnrollmentServiceSuite) TestEnrollStorageFailure() {
	s.Run("commit failure", func() {
		failing := s.failingSave()

		res := s.service.Enroll(s.ctx, failing, 1, 1, fixedNow)
		s.requireFailure(res, rules.TransactionFailed)
		s.Equal("BR24: Enrollment failed - transaction rolled back", res.Message)
		s.Empty(s.enrollments())

		// The session stays usable after the rollback.
		ok := s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow)
		s.True(ok.Success, ok.Message)
	})

	s.Run("read failure", func() {
		s.seedStudent(adultStudent(50, "S50", 1))
		res := s.service.Enroll(s.ctx, s.brokenEnrollments(), 50, 1, fixedNow)
		s.requireFailure(res, rules.TransactionFailed)
	})
}

// TestAssignGrade covers the first grade assignment.
func (s *EnrollmentServiceSuite) TestAssignGrade() {
	s.seedEnrollment(models.Enrollment{StudentID: 1, CourseID: 1, EnrollDate: fixedNow.AddDate(0, 0, -30)})

	s.Run("missing enrollment", func() {
		s.requireFailure(s.service.AssignGrade(s.ctx, s.sess, 1, 99, 5), rules.EnrollmentNotFound)
	})

	s.Run("out of range", func() {
		s.requireFailure(s.service.AssignGrade(s.ctx, s.sess, 1, 1, 10.01), rules.GradeOutOfRange)
		s.requireFailure(s.service.AssignGrade(s.ctx, s.sess, 1, 1, -0.5), rules.GradeOutOfRange)
	})

	s.Run("thirty days is still inside the window and round trips", func() {
		res := s.service.AssignGrade(s.ctx, s.sess, 1, 1, 8.257)
		s.Require().True(res.Success, res.Message)
		s.Equal(MsgGradeAssigned, res.Message)

		all := s.enrollments()
		s.Require().Len(all, 1)
		s.Require().NotNil(all[0].Grade)
		s.Equal(models.NewGrade(8.26), *all[0].Grade)
		s.InDelta(8.26, all[0].Grade.Float64(), 1e-9)
		s.False(all[0].IsFinalized)
	})

	s.Run("bounds are inclusive", func() {
		s.True(s.service.AssignGrade(s.ctx, s.sess, 1, 1, 0).Success)
		s.True(s.service.AssignGrade(s.ctx, s.sess, 1, 1, 10).Success)
	})

	s.Run("window is checked before the range", func() {
		s.seedStudent(adultStudent(60, "S60", 1))
		s.seedEnrollment(models.Enrollment{StudentID: 60, CourseID: 1, EnrollDate: fixedNow.AddDate(0, 0, -45)})
		s.requireFailure(s.service.AssignGrade(s.ctx, s.sess, 60, 1, 99), rules.GradingWindowExpired)
	})
}

// TestGradingWindowOutsideUTC runs enrollment and grading on a clock that is
// behind UTC, where the stored enroll date and now fall on different days.
func (s *EnrollmentServiceSuite) TestGradingWindowOutsideUTC() {
	edt := time.FixedZone("EDT", -4*3600)
	now := time.Date(2025, 6, 1, 22, 0, 0, 0, edt)
	service := NewEnrollmentService(s.logger, s.observer, func() time.Time { return now })

	res := service.Enroll(s.ctx, s.sess, 1, 1, now)
	s.Require().True(res.Success, res.Message)

	now = time.Date(2025, 7, 1, 21, 0, 0, 0, edt)
	res = service.AssignGrade(s.ctx, s.sess, 1, 1, 7)
	s.True(res.Success, "day thirty of the window: %s", res.Message)

	now = time.Date(2025, 7, 2, 9, 0, 0, 0, edt)
	s.requireFailure(service.AssignGrade(s.ctx, s.sess, 1, 1, 7), rules.GradingWindowExpired)
}

// TestUpdateGrade covers grade revisions.
func (s *EnrollmentServiceSuite) TestUpdateGrade() {
	g := models.NewGrade(5)
	s.seedEnrollment(models.Enrollment{StudentID: 1, CourseID: 1, EnrollDate: fixedNow.AddDate(0, 0, -90), Grade: &g})

	s.Run("ignores the grading window", func() {
		res := s.service.UpdateGrade(s.ctx, s.sess, 1, 1, 7.5)
		s.Require().True(res.Success, res.Message)
		s.Equal(DefaultSuccessMessage, res.Message)

		all := s.enrollments()
		s.Require().NotNil(all[0].Grade)
		s.Equal(models.Grade(750), *all[0].Grade)
	})

	s.Run("missing enrollment", func() {
		s.requireFailure(s.service.UpdateGrade(s.ctx, s.sess, 99, 1, 5), rules.EnrollmentNotFound)
	})

	s.Run("out of range", func() {
		s.requireFailure(s.service.UpdateGrade(s.ctx, s.sess, 1, 1, 11), rules.GradeOutOfRange)
	})

	s.Run("commit failure is reported as BR24", func() {
		failing := s.failingSave()
		res := s.service.UpdateGrade(s.ctx, failing, 1, 1, 9)
		s.requireFailure(res, rules.TransactionFailed)
		s.Equal(models.Grade(750), *s.enrollments()[0].Grade)
	})
}

// TestGetAllIsRestartable checks the sequence reloads on every range.
func (s *EnrollmentServiceSuite) TestGetAllIsRestartable() {
	seq := s.service.GetAll(s.ctx, s.sess)

	first, err := Collect(seq)
	s.Require().NoError(err)
	s.Empty(first)

	s.Require().True(s.service.Enroll(s.ctx, s.sess, 1, 1, fixedNow).Success)

	second, err := Collect(seq)
	s.Require().NoError(err)
	s.Len(second, 1)

	s.Run("storage error is yielded", func() {
		_, err := Collect(s.service.GetAll(s.ctx, s.brokenEnrollments()))
		s.ErrorIs(err, errStorageDown)
	})
}
