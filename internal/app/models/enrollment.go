package models

import "time"

// EnrollmentKey is the composite identity of an enrollment.
type EnrollmentKey struct {
	StudentID int64
	CourseID  int64
}

// Enrollment links one student to one course. At most one exists per pair.
type Enrollment struct {
	StudentID   int64     `json:"studentId" db:"student_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	EnrollDate  time.Time `json:"enrollDate" db:"enroll_date"`
	Grade       *Grade    `json:"grade" db:"grade"` // Nullable until assigned
	IsFinalized bool      `json:"isFinalized" db:"is_finalized"`
}

// Key returns the composite identity of the enrollment.
func (e Enrollment) Key() EnrollmentKey {
	return EnrollmentKey{StudentID: e.StudentID, CourseID: e.CourseID}
}

// HasGrade reports whether a grade has been assigned.
func (e Enrollment) HasGrade() bool {
	return e.Grade != nil
}
