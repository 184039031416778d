package dto

import (
	"time"

	"github.com/yigit/coursemanager/internal/app/models"
)

// EnrollRequest represents an enrollment attempt
type EnrollRequest struct {
	StudentID  int64  `json:"studentId" binding:"required,gt=0"`
	CourseID   int64  `json:"courseId" binding:"required,gt=0"`
	EnrollDate string `json:"enrollDate" binding:"omitempty,datetime=2006-01-02"` // Defaults to today
}

// Date returns the requested enroll date, or today when none was sent.
func (r EnrollRequest) Date(today time.Time) time.Time {
	if r.EnrollDate == "" {
		return today
	}
	d, _ := time.Parse(models.DateLayout, r.EnrollDate)
	return d
}

// GradeRequest carries a grade for assignment or update. The 0-10 range is a business rule.
type GradeRequest struct {
	Grade *float64 `json:"grade" binding:"required"`
}
