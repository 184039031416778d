package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// Roster columns, in sheet order.
const (
	colID = iota
	colCode
	colFullName
	colEmail
	colDateOfBirth
	colDepartmentID
	colActive
	rosterColumns
)

// RowFailure explains why one roster row was not imported. Row is 1-based as
// shown in spreadsheet software.
type RowFailure struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary is the outcome of a roster import.
type ImportSummary struct {
	Imported int          `json:"imported"`
	Failed   []RowFailure `json:"failed"`
}

// RosterImporter creates students from the first sheet of an XLSX workbook.
type RosterImporter struct {
	students *StudentService
	logger   zerolog.Logger
}

// NewRosterImporter creates an importer that goes through students for every row.
func NewRosterImporter(logger zerolog.Logger, students *StudentService) *RosterImporter {
	return &RosterImporter{
		students: students,
		logger:   logger.With().Str("service", "roster_import").Logger(),
	}
}

// ImportStudents reads the workbook and creates one student per data row. The
// header row is skipped and blank rows are ignored. Rows that cannot be parsed
// or that break a student rule are reported in the summary; only an unreadable
// workbook is an error.
func (r *RosterImporter) ImportStudents(ctx context.Context, sess repositories.Session, reader io.Reader) (ImportSummary, error) {
	summary := ImportSummary{Failed: make([]RowFailure, 0)}

	f, err := excelize.OpenReader(reader)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", apperrors.ErrInvalidWorkbook, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.Warn().Err(err).Msg("Error closing workbook")
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return summary, fmt.Errorf("%w: workbook does not contain any sheets", apperrors.ErrInvalidWorkbook)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return summary, fmt.Errorf("%w: failed to get rows from sheet %s: %v", apperrors.ErrInvalidWorkbook, sheetName, err)
	}

	for i, row := range rows {
		if i == 0 || blankRow(row) {
			continue
		}
		line := i + 1

		student, err := parseRosterRow(row)
		if err != nil {
			summary.Failed = append(summary.Failed, RowFailure{Row: line, Message: err.Error()})
			continue
		}

		res := r.students.Create(ctx, sess, student)
		if !res.Success {
			summary.Failed = append(summary.Failed, RowFailure{Row: line, Message: res.Message})
			continue
		}
		summary.Imported++
	}

	r.logger.Info().
		Int("imported", summary.Imported).
		Int("failed", len(summary.Failed)).
		Msg("Roster import finished")
	return summary, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRosterRow(row []string) (*models.Student, error) {
	cells := make([]string, rosterColumns)
	for i := 0; i < rosterColumns && i < len(row); i++ {
		cells[i] = strings.TrimSpace(row[i])
	}

	id, err := strconv.ParseInt(cells[colID], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid student id %q", cells[colID])
	}

	student := models.NewStudent(id, cells[colCode], cells[colFullName])
	student.Email = cells[colEmail]

	if cells[colDateOfBirth] != "" {
		dob, err := time.Parse(models.DateLayout, cells[colDateOfBirth])
		if err != nil {
			return nil, fmt.Errorf("invalid date of birth %q, expected YYYY-MM-DD", cells[colDateOfBirth])
		}
		student.DateOfBirth = dob
	}

	if cells[colDepartmentID] != "" {
		deptID, err := strconv.ParseInt(cells[colDepartmentID], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid department id %q", cells[colDepartmentID])
		}
		student.DepartmentID = &deptID
	}

	if cells[colActive] != "" {
		active, err := parseFlag(cells[colActive])
		if err != nil {
			return nil, err
		}
		student.IsActive = active
	}
	return &student, nil
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	active, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid active flag %q", value)
	}
	return active, nil
}
