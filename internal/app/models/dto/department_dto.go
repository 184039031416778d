package dto

import "github.com/yigit/coursemanager/internal/app/models"

// CreateDepartmentRequest represents department creation data. Name rules are
// business rules and are checked by the service, not the binding.
type CreateDepartmentRequest struct {
	ID          int64   `json:"id" binding:"required,gt=0"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateDepartmentRequest represents department update data
type UpdateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ToModel builds the department to create.
func (r CreateDepartmentRequest) ToModel() models.Department {
	return models.Department{ID: r.ID, Name: r.Name, Description: r.Description}
}

// ToModel builds the department to store under id.
func (r UpdateDepartmentRequest) ToModel(id int64) models.Department {
	return models.Department{ID: id, Name: r.Name, Description: r.Description}
}
