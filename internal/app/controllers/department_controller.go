package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	departmentService DepartmentService
	reportService     ReportService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService DepartmentService, reportService ReportService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		reportService:     reportService,
	}
}

// CreateDepartment handles department creation
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	department := req.ToModel()
	result := c.departmentService.Create(ctx, middleware.SessionFrom(ctx), &department)
	middleware.WriteResult(ctx, result, http.StatusCreated)
}

// GetDepartmentByID retrieves a department by ID
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	department, err := c.departmentService.GetByID(ctx, middleware.SessionFrom(ctx), id)
	respondData(ctx, department, err)
}

// GetAllDepartments lists departments, paginated
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	respondPage(ctx, c.departmentService.GetAll(ctx, middleware.SessionFrom(ctx)))
}

// UpdateDepartment updates an existing department
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateDepartmentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	department := req.ToModel(id)
	result := c.departmentService.Update(ctx, middleware.SessionFrom(ctx), &department)
	middleware.WriteResult(ctx, result, http.StatusOK)
}

// DeleteDepartment deletes a department without students or courses
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	result := c.departmentService.Delete(ctx, middleware.SessionFrom(ctx), id)
	middleware.WriteResult(ctx, result, http.StatusOK)
}

// GetDepartmentCourses lists the courses of a department
// @Router /departments/{id}/courses [get]
func (c *DepartmentController) GetDepartmentCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	courses, err := c.reportService.CoursesByDepartment(ctx, middleware.SessionFrom(ctx), id)
	respondData(ctx, courses, err)
}
