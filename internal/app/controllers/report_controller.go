package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/coursemanager/internal/middleware"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportFilename  = "enrollments.xlsx"
)

// ReportController serves read-only reports
type ReportController struct {
	reportService ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// GetEnrollmentReport returns the enrollment report as JSON, or as a workbook with format=xlsx
// @Router /reports/enrollments [get]
func (c *ReportController) GetEnrollmentReport(ctx *gin.Context) {
	rows, err := c.reportService.EnrollmentReport(ctx, middleware.SessionFrom(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if ctx.Query("format") != "xlsx" {
		respondData(ctx, rows, nil)
		return
	}

	data, err := c.reportService.ExportEnrollmentReport(rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	ctx.Data(http.StatusOK, xlsxContentType, data)
}
