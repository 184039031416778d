package dto

import "github.com/yigit/coursemanager/internal/app/models"

// CourseFields are shared by create and update. Credits are range checked by the service.
type CourseFields struct {
	Code         string `json:"code" binding:"required"`
	Title        string `json:"title"`
	Credits      int    `json:"credits"`
	IsActive     *bool  `json:"isActive"` // Defaults to true
	DepartmentID *int64 `json:"departmentId"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
	CourseFields
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	CourseFields
}

// ToModel builds the course stored under id.
func (f CourseFields) ToModel(id int64) models.Course {
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return models.Course{
		ID:           id,
		Code:         f.Code,
		Title:        f.Title,
		Credits:      f.Credits,
		IsActive:     active,
		DepartmentID: f.DepartmentID,
	}
}
