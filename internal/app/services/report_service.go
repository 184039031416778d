package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
)

// ReportCache stores the last built enrollment report.
type ReportCache interface {
	// GetEnrollmentReport reports ok=false on a miss.
	GetEnrollmentReport(ctx context.Context) (rows []models.EnrollmentReportRow, ok bool, err error)
	SetEnrollmentReport(ctx context.Context, rows []models.EnrollmentReportRow) error
}

// ReportSheet is the worksheet name of exported reports.
const ReportSheet = "Enrollments"

var reportHeader = []any{
	"Student ID", "Student Code", "Student Name",
	"Course ID", "Course Code", "Course Title",
	"Enroll Date", "Grade", "Finalized",
}

// ReportService builds read-only views joining enrollments with students and courses.
type ReportService struct {
	logger zerolog.Logger
	cache  ReportCache
}

// NewReportService creates a report service. cache may be nil.
func NewReportService(logger zerolog.Logger, cache ReportCache) *ReportService {
	return &ReportService{
		logger: logger.With().Str("service", "report").Logger(),
		cache:  cache,
	}
}

// EnrollmentReport returns one row per enrollment whose student and course
// both exist, ordered by student then course.
func (s *ReportService) EnrollmentReport(ctx context.Context, sess repositories.Session) ([]models.EnrollmentReportRow, error) {
	if s.cache != nil {
		rows, ok, err := s.cache.GetEnrollmentReport(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Report cache read failed, rebuilding")
		} else if ok {
			return rows, nil
		}
	}

	enrollments, err := sess.Enrollments().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}
	students, err := sess.Students().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	courses, err := sess.Courses().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}

	studentsByID := make(map[int64]models.Student, len(students))
	for _, st := range students {
		studentsByID[st.ID] = st
	}
	coursesByID := make(map[int64]models.Course, len(courses))
	for _, c := range courses {
		coursesByID[c.ID] = c
	}

	rows := make([]models.EnrollmentReportRow, 0, len(enrollments))
	for _, e := range enrollments {
		st, okS := studentsByID[e.StudentID]
		c, okC := coursesByID[e.CourseID]
		if !okS || !okC {
			continue
		}
		rows = append(rows, models.EnrollmentReportRow{
			StudentID:   st.ID,
			StudentCode: st.Code,
			StudentName: st.FullName,
			CourseID:    c.ID,
			CourseCode:  c.Code,
			CourseTitle: c.Title,
			EnrollDate:  e.EnrollDate,
			Grade:       e.Grade,
			IsFinalized: e.IsFinalized,
		})
	}

	if s.cache != nil {
		if err := s.cache.SetEnrollmentReport(ctx, rows); err != nil {
			s.logger.Warn().Err(err).Msg("Report cache write failed")
		}
	}
	return rows, nil
}

// CoursesByDepartment lists the courses of an existing department.
func (s *ReportService) CoursesByDepartment(ctx context.Context, sess repositories.Session, departmentID int64) ([]models.Course, error) {
	department, err := sess.Departments().GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	courses, err := sess.Courses().FindByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	for i := range courses {
		courses[i].Department = department
	}
	return courses, nil
}

// CoursesOfStudent lists the courses an existing student is enrolled in.
func (s *ReportService) CoursesOfStudent(ctx context.Context, sess repositories.Session, studentID int64) ([]models.StudentCourseRow, error) {
	if _, err := sess.Students().GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	enrollments, err := sess.Enrollments().FindByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load enrollments: %w", err)
	}

	rows := make([]models.StudentCourseRow, 0, len(enrollments))
	for _, e := range enrollments {
		c, err := sess.Courses().GetByID(ctx, e.CourseID)
		if missing(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load course %d: %w", e.CourseID, err)
		}
		rows = append(rows, models.StudentCourseRow{
			CourseID:    c.ID,
			CourseCode:  c.Code,
			CourseTitle: c.Title,
			Credits:     c.Credits,
			Grade:       e.Grade,
		})
	}
	return rows, nil
}

// ExportEnrollmentReport renders rows as an XLSX workbook with a header row.
func (s *ReportService) ExportEnrollmentReport(rows []models.EnrollmentReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn().Err(err).Msg("Error closing workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), ReportSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(ReportSheet, "A1", &reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		grade, finalized := "", "no"
		if r.Grade != nil {
			grade = r.Grade.String()
		}
		if r.IsFinalized {
			finalized = "yes"
		}
		values := []any{
			r.StudentID, r.StudentCode, r.StudentName,
			r.CourseID, r.CourseCode, r.CourseTitle,
			r.EnrollDate.Format(models.DateLayout), grade, finalized,
		}
		if err := f.SetSheetRow(ReportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
