package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/coursemanager/internal/app/controllers"
	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/routes"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/pkg/metrics"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type resultBody struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	Code      string `json:"code"`
}

type listBody struct {
	Data       []map[string]any    `json:"data"`
	Pagination *dto.PaginationInfo `json:"pagination"`
}

type APISuite struct {
	suite.Suite
	router  *gin.Engine
	store   *repositories.MemoryStore
	metrics *metrics.Metrics
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	log := zerolog.Nop()

	s.store = repositories.NewMemoryStore()
	s.metrics = metrics.New()

	students := services.NewStudentService(log, s.metrics, fixedClock)
	reports := services.NewReportService(log, nil)
	ctrls := routes.Controllers{
		Department: controllers.NewDepartmentController(services.NewDepartmentService(log, s.metrics, fixedClock), reports),
		Student:    controllers.NewStudentController(students, reports, services.NewRosterImporter(log, students)),
		Course:     controllers.NewCourseController(services.NewCourseService(log, s.metrics, fixedClock)),
		Enrollment: controllers.NewEnrollmentController(services.NewEnrollmentService(log, s.metrics, fixedClock), fixedClock),
		Report:     controllers.NewReportController(reports),
	}

	s.router = gin.New()
	routes.SetupRouter(s.router, ctrls, s.store, log)
	routes.SetupOperational(s.router, map[string]routes.HealthCheck{
		"store": func(context.Context) error { return nil },
	}, s.metrics.Handler())
}

func (s *APISuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *APISuite) result(rec *httptest.ResponseRecorder) resultBody {
	var body resultBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func (s *APISuite) expectResult(rec *httptest.ResponseRecorder, status int, code string) {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	body := s.result(rec)
	s.Equal(code == "", body.IsSuccess)
	s.Equal(code, body.Code)
	if code != "" {
		s.True(strings.HasPrefix(body.Message, code+": "), body.Message)
	}
}

func (s *APISuite) list(path string) listBody {
	rec := s.do(http.MethodGet, path, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body listBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *APISuite) seed() {
	s.expectResult(s.do(http.MethodPost, "/api/v1/departments", `{"id":1,"name":"Engineering"}`), http.StatusCreated, "")
	s.expectResult(s.do(http.MethodPost, "/api/v1/departments", `{"id":2,"name":"Arts"}`), http.StatusCreated, "")
	s.expectResult(s.do(http.MethodPost, "/api/v1/students",
		`{"id":1,"code":"S1","fullName":"Ada Lovelace","dateOfBirth":"2000-12-10","departmentId":1}`), http.StatusCreated, "")
	s.expectResult(s.do(http.MethodPost, "/api/v1/courses",
		`{"id":1,"code":"C1","title":"Algorithms","credits":4,"departmentId":1}`), http.StatusCreated, "")
	s.expectResult(s.do(http.MethodPost, "/api/v1/courses",
		`{"id":2,"code":"C2","title":"Painting","credits":2,"departmentId":2}`), http.StatusCreated, "")
}

func (s *APISuite) TestDepartments() {
	s.seed()

	s.Run("duplicate name is a conflict", func() {
		s.expectResult(s.do(http.MethodPost, "/api/v1/departments", `{"id":3,"name":"Engineering"}`), http.StatusConflict, "BR01")
	})
	s.Run("short name is unprocessable", func() {
		s.expectResult(s.do(http.MethodPost, "/api/v1/departments", `{"id":3,"name":"AB"}`), http.StatusUnprocessableEntity, "BR02")
	})
	s.Run("missing id is a bad request", func() {
		rec := s.do(http.MethodPost, "/api/v1/departments", `{"name":"Physics"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "VAL_001")
	})
	s.Run("list is paginated", func() {
		body := s.list("/api/v1/departments?page=1&size=1")
		s.Require().Len(body.Data, 1)
		s.Equal("Engineering", body.Data[0]["name"])
		s.Require().NotNil(body.Pagination)
		s.Equal(int64(2), body.Pagination.TotalItems)
		s.Equal(2, body.Pagination.TotalPages)
	})
	s.Run("update and read back", func() {
		s.expectResult(s.do(http.MethodPut, "/api/v1/departments/2", `{"name":"Fine Arts","description":"Studio work"}`), http.StatusOK, "")
		rec := s.do(http.MethodGet, "/api/v1/departments/2", "")
		s.Require().Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"name":"Fine Arts"`)
		s.Contains(rec.Body.String(), `"description":"Studio work"`)
	})
	s.Run("unknown department is not found", func() {
		s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/departments/99", "").Code)
		s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/api/v1/departments/abc", "").Code)
	})
	s.Run("courses by department", func() {
		body := s.list("/api/v1/departments/1/courses")
		s.Require().Len(body.Data, 1)
		s.Equal("C1", body.Data[0]["code"])
		s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/departments/99/courses", "").Code)
	})
	s.Run("delete is blocked while students remain", func() {
		s.expectResult(s.do(http.MethodDelete, "/api/v1/departments/1", ""), http.StatusUnprocessableEntity, "BR03")
	})
}

func (s *APISuite) TestStudentsAndCourses() {
	s.seed()

	s.expectResult(s.do(http.MethodPost, "/api/v1/students",
		`{"id":2,"code":"S1","fullName":"Someone Else","dateOfBirth":"2001-01-01","departmentId":1}`), http.StatusConflict, "BR05")
	s.expectResult(s.do(http.MethodPost, "/api/v1/students",
		`{"id":2,"code":"S2","fullName":"Someone Else","dateOfBirth":"2001-01-01"}`), http.StatusUnprocessableEntity, "BR06")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/students",
		`{"id":2,"code":"S2","fullName":"Someone Else","dateOfBirth":"01/01/2001","departmentId":1}`).Code)

	s.expectResult(s.do(http.MethodPut, "/api/v1/students/1",
		`{"code":"S1","fullName":"Ada King","dateOfBirth":"2000-12-10","departmentId":1,"isActive":false}`), http.StatusOK, "")
	rec := s.do(http.MethodGet, "/api/v1/students/1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"fullName":"Ada King"`)
	s.Contains(rec.Body.String(), `"isActive":false`)

	s.expectResult(s.do(http.MethodPost, "/api/v1/courses",
		`{"id":3,"code":"C3","title":"Heavy","credits":7,"departmentId":1}`), http.StatusUnprocessableEntity, "BR13")
	s.expectResult(s.do(http.MethodPut, "/api/v1/courses/1",
		`{"code":"C1","title":"Algorithms","credits":0,"departmentId":1}`), http.StatusUnprocessableEntity, "BR15")
	s.expectResult(s.do(http.MethodPut, "/api/v1/courses/9",
		`{"code":"C9","title":"Ghost","credits":3,"departmentId":1}`), http.StatusNotFound, "BR20")
	s.Len(s.list("/api/v1/courses").Data, 2)

	s.expectResult(s.do(http.MethodDelete, "/api/v1/courses/2", ""), http.StatusOK, "")
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/api/v1/courses/2", "").Code)
	s.expectResult(s.do(http.MethodDelete, "/api/v1/students/1", ""), http.StatusOK, "")
	s.Empty(s.list("/api/v1/students").Data)
}

func (s *APISuite) TestEnrollmentLifecycle() {
	s.seed()

	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":1}`), http.StatusCreated, "")
	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":1}`), http.StatusConflict, "BR16")
	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":9}`), http.StatusNotFound, "BR20")
	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":2}`), http.StatusUnprocessableEntity, "BR19")
	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments",
		`{"studentId":1,"courseId":2,"enrollDate":"2025-06-14"}`), http.StatusUnprocessableEntity, "BR18")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1}`).Code)

	rec := s.do(http.MethodPost, "/api/v1/enrollments/1/1/grade", `{"grade":8.257}`)
	s.expectResult(rec, http.StatusOK, "")
	s.Equal("Grade assigned", s.result(rec).Message)

	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments/1/1/grade", `{"grade":10.5}`), http.StatusUnprocessableEntity, "BR22")
	s.expectResult(s.do(http.MethodPut, "/api/v1/enrollments/1/2/grade", `{"grade":5}`), http.StatusNotFound, "BR21")
	s.expectResult(s.do(http.MethodPut, "/api/v1/enrollments/1/1/grade", `{"grade":9}`), http.StatusOK, "")
	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, "/api/v1/enrollments/1/1/grade", `{}`).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodPut, "/api/v1/enrollments/x/1/grade", `{"grade":9}`).Code)

	enrollments := s.list("/api/v1/enrollments")
	s.Require().Len(enrollments.Data, 1)
	s.Equal(9.0, enrollments.Data[0]["grade"])

	rec = s.do(http.MethodGet, "/api/v1/students/1/courses", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"courseCode":"C1"`)
	s.Contains(rec.Body.String(), `"grade":9.00`)

	s.expectResult(s.do(http.MethodDelete, "/api/v1/courses/1", ""), http.StatusUnprocessableEntity, "BR14")
	s.expectResult(s.do(http.MethodDelete, "/api/v1/students/1", ""), http.StatusUnprocessableEntity, "BR10")
}

func (s *APISuite) TestEnrollmentReport() {
	s.seed()
	s.expectResult(s.do(http.MethodPost, "/api/v1/enrollments", `{"studentId":1,"courseId":1}`), http.StatusCreated, "")

	report := s.list("/api/v1/reports/enrollments")
	s.Require().Len(report.Data, 1)
	s.Equal("S1", report.Data[0]["studentCode"])
	s.Equal("Algorithms", report.Data[0]["courseTitle"])

	rec := s.do(http.MethodGet, "/api/v1/reports/enrollments?format=xlsx", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "spreadsheetml")
	s.Contains(rec.Header().Get("Content-Disposition"), "enrollments.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	s.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows(services.ReportSheet)
	s.Require().NoError(err)
	s.Len(rows, 2)
}

func (s *APISuite) TestImportStudents() {
	s.seed()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range [][]any{
		{"id", "code", "full name", "email", "date of birth", "department", "active"},
		{"10", "S10", "Grace Hopper", "grace@example.edu", "1999-05-05", "1", "yes"},
		{"11", "S1", "Duplicate", "", "1999-05-05", "1", ""},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		s.Require().NoError(err)
		s.Require().NoError(f.SetSheetRow(sheet, cell, &row))
	}
	workbook, err := f.WriteToBuffer()
	s.Require().NoError(err)
	s.Require().NoError(f.Close())

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "roster.xlsx")
	s.Require().NoError(err)
	_, err = part.Write(workbook.Bytes())
	s.Require().NoError(err)
	s.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/import", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data dto.ImportResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Data.Imported)
	s.Require().Len(resp.Data.Failed, 1)
	s.Equal(3, resp.Data.Failed[0].Row)
	s.Len(s.list("/api/v1/students").Data, 2)

	s.Run("missing file", func() {
		s.Equal(http.StatusBadRequest, s.do(http.MethodPost, "/api/v1/students/import", "").Code)
	})
}

func (s *APISuite) TestOperationalEndpoints() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok","components":{"store":"ok"}}`, rec.Body.String())

	s.seed()
	rec = s.do(http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `coursemanager_commits_total{operation="department.create"} 2`)
}

func (s *APISuite) TestSwaggerDocs() {
	routes.SetupSwagger(s.router)

	rec := s.do(http.MethodGet, "/swagger/doc.json", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &doc))
	s.Equal("/api/v1", doc.BasePath)
	for _, route := range s.router.Routes() {
		path, ok := strings.CutPrefix(route.Path, doc.BasePath)
		if !ok {
			continue
		}
		path = apiParam.ReplaceAllString(path, "{$1}")
		s.Contains(doc.Paths[path], strings.ToLower(route.Method), "%s %s is undocumented", route.Method, route.Path)
	}

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/swagger/index.html", "").Code)
}

var apiParam = regexp.MustCompile(`:(\w+)`)

func TestHealthDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupOperational(router, map[string]routes.HealthCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected /metrics to be absent, got %d", rec.Code)
	}
}
