package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/controllers"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/middleware"
)

// Controllers groups every handler set mounted under /api/v1.
type Controllers struct {
	Department *controllers.DepartmentController
	Student    *controllers.StudentController
	Course     *controllers.CourseController
	Enrollment *controllers.EnrollmentController
	Report     *controllers.ReportController
}

// HealthCheck reports whether a backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// SetupRouter configures all application routes. Every API request runs in
// one session taken from uow.
func SetupRouter(router *gin.Engine, c Controllers, uow repositories.UnitOfWork, logger zerolog.Logger) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session(uow, logger))

	departments := v1.Group("/departments")
	{
		departments.GET("", c.Department.GetAllDepartments)
		departments.POST("", c.Department.CreateDepartment)
		departments.GET("/:id", c.Department.GetDepartmentByID)
		departments.PUT("/:id", c.Department.UpdateDepartment)
		departments.DELETE("/:id", c.Department.DeleteDepartment)
		departments.GET("/:id/courses", c.Department.GetDepartmentCourses)
	}

	students := v1.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.POST("", c.Student.CreateStudent)
		students.POST("/import", c.Student.ImportStudents)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/courses", c.Student.GetStudentCourses)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", c.Course.GetAllCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", c.Enrollment.GetAllEnrollments)
		enrollments.POST("", c.Enrollment.Enroll)
		enrollments.POST("/:studentId/:courseId/grade", c.Enrollment.AssignGrade)
		enrollments.PUT("/:studentId/:courseId/grade", c.Enrollment.UpdateGrade)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/enrollments", c.Report.GetEnrollmentReport)
	}
}

// SetupOperational mounts /health and, when metrics is non-nil, /metrics.
func SetupOperational(router *gin.Engine, checks map[string]HealthCheck, metrics http.Handler) {
	router.GET("/health", func(ctx *gin.Context) {
		reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		components := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(reqCtx); err != nil {
				components[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			components[name] = "ok"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		ctx.JSON(status, gin.H{"status": state, "components": components})
	})

	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}
}
