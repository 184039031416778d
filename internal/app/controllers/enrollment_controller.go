package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/middleware"
)

// EnrollmentController handles enrollment and grading
type EnrollmentController struct {
	enrollmentService EnrollmentService
	now               services.Clock
}

// NewEnrollmentController creates a new EnrollmentController. A nil clock uses time.Now.
func NewEnrollmentController(enrollmentService EnrollmentService, clock services.Clock) *EnrollmentController {
	if clock == nil {
		clock = time.Now
	}
	return &EnrollmentController{enrollmentService: enrollmentService, now: clock}
}

// Enroll enrolls a student in a course
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result := c.enrollmentService.Enroll(ctx, middleware.SessionFrom(ctx), req.StudentID, req.CourseID, req.Date(c.now()))
	middleware.WriteResult(ctx, result, http.StatusCreated)
}

// GetAllEnrollments lists enrollments, paginated
// @Router /enrollments [get]
func (c *EnrollmentController) GetAllEnrollments(ctx *gin.Context) {
	respondPage(ctx, c.enrollmentService.GetAll(ctx, middleware.SessionFrom(ctx)))
}

// AssignGrade sets the first grade of an enrollment
// @Router /enrollments/{studentId}/{courseId}/grade [post]
func (c *EnrollmentController) AssignGrade(ctx *gin.Context) {
	c.grade(ctx, c.enrollmentService.AssignGrade)
}

// UpdateGrade changes the grade of a non-finalized enrollment
// @Router /enrollments/{studentId}/{courseId}/grade [put]
func (c *EnrollmentController) UpdateGrade(ctx *gin.Context) {
	c.grade(ctx, c.enrollmentService.UpdateGrade)
}

type gradeFunc = func(ctx context.Context, sess repositories.Session, studentID, courseID int64, grade float64) services.Result

func (c *EnrollmentController) grade(ctx *gin.Context, apply gradeFunc) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	courseID, ok := middleware.ParseIDParam(ctx, "courseId")
	if !ok {
		return
	}
	var req dto.GradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	middleware.WriteResult(ctx, apply(ctx, middleware.SessionFrom(ctx), studentID, courseID, *req.Grade), http.StatusOK)
}
