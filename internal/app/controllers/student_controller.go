package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/app/models/dto"
	"github.com/yigit/coursemanager/internal/middleware"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// rosterField is the multipart field carrying the workbook.
const rosterField = "file"

// StudentController handles student-related operations
type StudentController struct {
	studentService StudentService
	reportService  ReportService
	importer       RosterImporter
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentService, reportService ReportService, importer RosterImporter) *StudentController {
	return &StudentController{
		studentService: studentService,
		reportService:  reportService,
		importer:       importer,
	}
}

// CreateStudent handles student creation
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := req.ToModel(req.ID)
	result := c.studentService.Create(ctx, middleware.SessionFrom(ctx), &student)
	middleware.WriteResult(ctx, result, http.StatusCreated)
}

// GetStudentByID retrieves a student by ID
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	student, err := c.studentService.GetByID(ctx, middleware.SessionFrom(ctx), id)
	respondData(ctx, student, err)
}

// GetAllStudents lists students, paginated
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	respondPage(ctx, c.studentService.GetAll(ctx, middleware.SessionFrom(ctx)))
}

// UpdateStudent replaces an existing student
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student := req.ToModel(id)
	result := c.studentService.Update(ctx, middleware.SessionFrom(ctx), &student)
	middleware.WriteResult(ctx, result, http.StatusOK)
}

// DeleteStudent deletes a student without enrollments
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	result := c.studentService.Delete(ctx, middleware.SessionFrom(ctx), id)
	middleware.WriteResult(ctx, result, http.StatusOK)
}

// GetStudentCourses lists the courses a student is enrolled in
// @Router /students/{id}/courses [get]
func (c *StudentController) GetStudentCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	rows, err := c.reportService.CoursesOfStudent(ctx, middleware.SessionFrom(ctx), id)
	respondData(ctx, rows, err)
}

// ImportStudents creates students from an uploaded XLSX roster
// @Router /students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
	header, err := ctx.FormFile(rosterField)
	if err != nil {
		middleware.AbortWithValidation(ctx, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Roster file is required").
			WithField(rosterField))
		return
	}
	file, err := header.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("cannot read uploaded roster"))
		return
	}
	defer file.Close()

	summary, err := c.importer.ImportStudents(ctx, middleware.SessionFrom(ctx), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ImportResponse{Imported: summary.Imported, Failed: make([]dto.ImportRowError, 0, len(summary.Failed))}
	for _, f := range summary.Failed {
		resp.Failed = append(resp.Failed, dto.ImportRowError{Row: f.Row, Message: f.Message})
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
