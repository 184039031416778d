// Package controllers exposes the services over HTTP. Handlers parse the
// request, run one service call inside the request's session and render the
// outcome; they add no business rules of their own.
package controllers

//go:generate mockgen -destination=mocks/services_mock.go -package=mocks . DepartmentService,ReportService,RosterImporter

import (
	"context"
	"io"
	"iter"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/middleware"
	"github.com/yigit/coursemanager/internal/pkg/helpers"
)

// DepartmentService is what the department endpoints need.
type DepartmentService interface {
	Create(ctx context.Context, sess repositories.Session, department *models.Department) services.Result
	Update(ctx context.Context, sess repositories.Session, department *models.Department) services.Result
	Delete(ctx context.Context, sess repositories.Session, id int64) services.Result
	GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Department, error)
	GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Department, error]
}

// StudentService is what the student endpoints need.
type StudentService interface {
	Create(ctx context.Context, sess repositories.Session, student *models.Student) services.Result
	Update(ctx context.Context, sess repositories.Session, student *models.Student) services.Result
	Delete(ctx context.Context, sess repositories.Session, id int64) services.Result
	GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Student, error)
	GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Student, error]
}

// CourseService is what the course endpoints need.
type CourseService interface {
	Create(ctx context.Context, sess repositories.Session, course *models.Course) services.Result
	Update(ctx context.Context, sess repositories.Session, course *models.Course) services.Result
	Delete(ctx context.Context, sess repositories.Session, id int64) services.Result
	GetByID(ctx context.Context, sess repositories.Session, id int64) (*models.Course, error)
	GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Course, error]
}

// EnrollmentService is what the enrollment endpoints need.
type EnrollmentService interface {
	Enroll(ctx context.Context, sess repositories.Session, studentID, courseID int64, enrollDate time.Time) services.Result
	AssignGrade(ctx context.Context, sess repositories.Session, studentID, courseID int64, grade float64) services.Result
	UpdateGrade(ctx context.Context, sess repositories.Session, studentID, courseID int64, grade float64) services.Result
	GetAll(ctx context.Context, sess repositories.Session) iter.Seq2[models.Enrollment, error]
}

// ReportService is what the report endpoints need.
type ReportService interface {
	EnrollmentReport(ctx context.Context, sess repositories.Session) ([]models.EnrollmentReportRow, error)
	CoursesByDepartment(ctx context.Context, sess repositories.Session, departmentID int64) ([]models.Course, error)
	CoursesOfStudent(ctx context.Context, sess repositories.Session, studentID int64) ([]models.StudentCourseRow, error)
	ExportEnrollmentReport(rows []models.EnrollmentReportRow) ([]byte, error)
}

// RosterImporter is what the student import endpoint needs.
type RosterImporter interface {
	ImportStudents(ctx context.Context, sess repositories.Session, reader io.Reader) (services.ImportSummary, error)
}

// respondPage drains seq and writes the requested page.
func respondPage[T any](ctx *gin.Context, seq iter.Seq2[T, error]) {
	items, err := services.Collect(seq)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	data, info := helpers.Paginate(items, helpers.ParsePaginationParams(ctx))

	resp := dto.NewAPIResponse(data)
	resp.Pagination = &info
	ctx.JSON(http.StatusOK, resp)
}

// respondData writes a single read result.
func respondData(ctx *gin.Context, data any, err error) {
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(data))
}
