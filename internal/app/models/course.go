package models

// Course represents a course offered by a department.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	Code         string `json:"code" db:"code"`
	Title        string `json:"title" db:"title"`
	Credits      int    `json:"credits" db:"credits"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	DepartmentID *int64 `json:"departmentId,omitempty" db:"department_id"` // Nullable

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// NewCourse returns an active course.
func NewCourse(id int64, code, title string, credits int) Course {
	return Course{ID: id, Code: code, Title: title, Credits: credits, IsActive: true}
}
