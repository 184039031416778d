// Package rules holds the business rule catalogue (BR01-BR30) and the pure
// predicates the services use to evaluate it. Nothing here touches storage
// state directly; callers supply the entities.
package rules

import "fmt"

// Code is the stable identifier of a single business rule.
type Code string

// Department rules
const (
	DepartmentNameNotUnique Code = "BR01"
	DepartmentNameInvalid   Code = "BR02"
	DepartmentHasStudents   Code = "BR03"
	DepartmentHasCourses    Code = "BR04"
)

// Student rules
const (
	StudentCodeNotUnique  Code = "BR05"
	StudentNoDepartment   Code = "BR06"
	StudentNameInvalid    Code = "BR07-08"
	StudentEmailNotUnique Code = "BR09"
	StudentHasEnrollments Code = "BR10"
)

// Course rules
const (
	CourseCodeNotUnique     Code = "BR11"
	CourseNoDepartment      Code = "BR12"
	CourseCreditsOutOfRange Code = "BR13"
	CourseHasEnrollments    Code = "BR14"
	CourseInactive          Code = "BR15"
)

// Enrollment rules
const (
	DuplicateEnrollment  Code = "BR16"
	MaxCoursesExceeded   Code = "BR17"
	PastEnrollDate       Code = "BR18"
	DepartmentMismatch   Code = "BR19"
	InvalidReference     Code = "BR20"
	EnrollmentNotFound   Code = "BR21"
	GradeOutOfRange      Code = "BR22"
	AlreadyFinalized     Code = "BR23"
	TransactionFailed    Code = "BR24"
	UnderAge             Code = "BR26"
	ZeroCredits          Code = "BR27"
	EnrollCourseInactive Code = "BR28"
	StudentInactive      Code = "BR29"
	GradingWindowExpired Code = "BR30"
)

// Limits used by the rule chains.
const (
	MinNameLength            = 3
	MinimumAge               = 18
	MinimumCredits           = 1
	MaximumCredits           = 6
	MaxEnrollmentsPerStudent = 5
	GradingWindowDays        = 30
	MinGrade                 = 0.0
	MaxGrade                 = 10.0
)

var descriptions = map[Code]string{
	DepartmentNameNotUnique: "Department name must be unique",
	DepartmentNameInvalid:   "Name cannot be empty or shorter than 3 characters",
	DepartmentHasStudents:   "Cannot delete department with students",
	DepartmentHasCourses:    "Cannot delete department with courses",

	StudentCodeNotUnique:  "StudentCode must be unique",
	StudentNoDepartment:   "Student must belong to exactly one department",
	StudentNameInvalid:    "Full name invalid",
	StudentEmailNotUnique: "Email must be unique",
	StudentHasEnrollments: "Cannot delete student with enrollments",

	CourseCodeNotUnique:     "CourseCode must be unique",
	CourseNoDepartment:      "Course must belong to one department",
	CourseCreditsOutOfRange: "Credits must be 1-6",
	CourseHasEnrollments:    "Cannot delete course with enrollments",
	CourseInactive:          "Cannot update inactive course",

	DuplicateEnrollment:  "Already enrolled",
	MaxCoursesExceeded:   "Max 5 courses",
	PastEnrollDate:       "Future date only",
	DepartmentMismatch:   "Same department required",
	InvalidReference:     "Invalid student/course",
	EnrollmentNotFound:   "Enrollment not found",
	GradeOutOfRange:      "Grade must be 0-10",
	AlreadyFinalized:     "Cannot update finalized grade",
	TransactionFailed:    "Operation failed - transaction rolled back",
	UnderAge:             "Student must be at least 18 years old",
	ZeroCredits:          "Course must have at least 1 credit",
	EnrollCourseInactive: "Cannot enroll in inactive courses",
	StudentInactive:      "Inactive student cannot enroll",
	GradingWindowExpired: "Grade can only be assigned within 30 days",
}

// Description returns the default human readable text for the code.
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "Business rule violated"
}

// Violation is a failed rule together with the text shown to the caller.
type Violation struct {
	Code        Code
	Description string
}

// Violate builds a violation carrying the default description.
func Violate(code Code) Violation {
	return Violation{Code: code, Description: code.Description()}
}

// Violatef builds a violation with a custom description.
func Violatef(code Code, format string, args ...any) Violation {
	return Violation{Code: code, Description: fmt.Sprintf(format, args...)}
}

// Message renders "BRnn: description", the prefix callers assert on.
func (v Violation) Message() string {
	return string(v.Code) + ": " + v.Description
}
