package dto

import (
	"time"

	"github.com/yigit/coursemanager/internal/app/models"
)

// StudentFields are shared by create and update.
type StudentFields struct {
	Code         string `json:"code" binding:"required"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	DateOfBirth  string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	IsActive     *bool  `json:"isActive"` // Defaults to true
	DepartmentID *int64 `json:"departmentId"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	ID int64 `json:"id" binding:"required,gt=0"`
	StudentFields
}

// UpdateStudentRequest represents student update data
type UpdateStudentRequest struct {
	StudentFields
}

// ToModel builds the student stored under id. DateOfBirth was validated by binding.
func (f StudentFields) ToModel(id int64) models.Student {
	dob, _ := time.Parse(models.DateLayout, f.DateOfBirth)
	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}
	return models.Student{
		ID:           id,
		Code:         f.Code,
		FullName:     f.FullName,
		Email:        f.Email,
		DateOfBirth:  dob,
		IsActive:     active,
		DepartmentID: f.DepartmentID,
	}
}
