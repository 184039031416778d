package models

import "time"

// EnrollmentReportRow is one line of the enrollment report.
type EnrollmentReportRow struct {
	StudentID   int64     `json:"studentId"`
	StudentCode string    `json:"studentCode"`
	StudentName string    `json:"studentName"`
	CourseID    int64     `json:"courseId"`
	CourseCode  string    `json:"courseCode"`
	CourseTitle string    `json:"courseTitle"`
	EnrollDate  time.Time `json:"enrollDate"`
	Grade       *Grade    `json:"grade"`
	IsFinalized bool      `json:"isFinalized"`
}

// StudentCourseRow is one course a student is enrolled in, with the grade so far.
type StudentCourseRow struct {
	CourseID    int64  `json:"courseId"`
	CourseCode  string `json:"courseCode"`
	CourseTitle string `json:"courseTitle"`
	Credits     int    `json:"credits"`
	Grade       *Grade `json:"grade"`
}
