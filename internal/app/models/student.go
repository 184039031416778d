package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Code         string    `json:"code" db:"code" example:"S001"`             // Unique student number
	FullName     string    `json:"fullName" db:"full_name" example:"Jane Doe"`
	Email        string    `json:"email,omitempty" db:"email"`                // Empty means not provided
	DateOfBirth  time.Time `json:"dateOfBirth" db:"date_of_birth"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"` // Nullable
}

// NewStudent returns a student with the storage defaults applied.
func NewStudent(id int64, code, fullName string) Student {
	return Student{ID: id, Code: code, FullName: fullName, IsActive: true}
}
