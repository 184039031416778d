package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/yigit/coursemanager/internal/app/controllers/mocks"
	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/middleware"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

var errBackend = errors.New("backend unavailable")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Session(repositories.NewMemoryStore(), zerolog.Nop()))
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestReportControllerErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *mocks.MockReportService)
		path  string
		want  int
	}{
		{
			name: "report failure",
			setup: func(m *mocks.MockReportService) {
				m.EXPECT().EnrollmentReport(gomock.Any(), gomock.Any()).Return(nil, errBackend)
			},
			path: "/reports/enrollments",
			want: http.StatusInternalServerError,
		},
		{
			name: "export failure",
			setup: func(m *mocks.MockReportService) {
				m.EXPECT().EnrollmentReport(gomock.Any(), gomock.Any()).Return([]models.EnrollmentReportRow{}, nil)
				m.EXPECT().ExportEnrollmentReport(gomock.Any()).Return(nil, errBackend)
			},
			path: "/reports/enrollments?format=xlsx",
			want: http.StatusInternalServerError,
		},
		{
			name: "json report skips the export",
			setup: func(m *mocks.MockReportService) {
				m.EXPECT().EnrollmentReport(gomock.Any(), gomock.Any()).Return([]models.EnrollmentReportRow{}, nil)
			},
			path: "/reports/enrollments",
			want: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := mocks.NewMockReportService(gomock.NewController(t))
			tt.setup(reports)

			r := newRouter()
			r.GET("/reports/enrollments", NewReportController(reports).GetEnrollmentReport)
			assert.Equal(t, tt.want, serve(r, http.MethodGet, tt.path).Code)
		})
	}
}

func TestStudentCoursesNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mocks.NewMockReportService(ctrl)
	reports.EXPECT().CoursesOfStudent(gomock.Any(), gomock.Any(), int64(4)).
		Return(nil, fmt.Errorf("student 4: %w", apperrors.ErrResourceNotFound))

	r := newRouter()
	students := services.NewStudentService(zerolog.Nop(), nil, nil)
	r.GET("/students/:id/courses", NewStudentController(students, reports, mocks.NewMockRosterImporter(ctrl)).GetStudentCourses)

	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/students/4/courses").Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodGet, "/students/zero/courses").Code)
}

func TestGetAllSurfacesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	departments := mocks.NewMockDepartmentService(ctrl)
	departments.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return(func(yield func(models.Department, error) bool) {
		yield(models.Department{}, errBackend)
	})

	r := newRouter()
	r.GET("/departments", NewDepartmentController(departments, mocks.NewMockReportService(ctrl)).GetAllDepartments)
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/departments").Code)
}
