package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course := req.ToModel(req.ID)
	middleware.WriteResult(ctx, c.courseService.Create(ctx, middleware.SessionFrom(ctx), &course), http.StatusCreated)
}

// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	course, err := c.courseService.GetByID(ctx, middleware.SessionFrom(ctx), id)
	respondData(ctx, course, err)
}

// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	respondPage(ctx, c.courseService.GetAll(ctx, middleware.SessionFrom(ctx)))
}

// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	course := req.ToModel(id)
	middleware.WriteResult(ctx, c.courseService.Update(ctx, middleware.SessionFrom(ctx), &course), http.StatusOK)
}

// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	middleware.WriteResult(ctx, c.courseService.Delete(ctx, middleware.SessionFrom(ctx), id), http.StatusOK)
}
