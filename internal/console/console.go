// Package console is the interactive menu front end. Each menu action runs
// in its own session against the same services the HTTP API uses.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/chzyer/readline"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// LineReader reads one line of input per call. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Services are the operations reachable from the menu.
type Services struct {
	Students    *services.StudentService
	Courses     *services.CourseService
	Enrollments *services.EnrollmentService
	Reports     *services.ReportService
}

var errInvalidNumber = errors.New("invalid number")

const menu = `===================================
   COURSE MANAGEMENT SYSTEM
===================================
1. Display all students
2. Display courses by department
3. Display courses of a student
4. Enroll student into course
5. Update student information
6. Delete a course
7. Display enrollment report
8. Assign grade
0. Exit
-----------------------------------`

// Console runs the menu loop.
type Console struct {
	in    LineReader
	out   io.Writer
	store repositories.UnitOfWork
	svc   Services
	now   services.Clock
}

// New creates a console. A nil clock uses the services' default.
func New(in LineReader, out io.Writer, store repositories.UnitOfWork, svc Services, clock services.Clock) *Console {
	return &Console{in: in, out: out, store: store, svc: svc, now: clock}
}

// Run shows the menu until the user picks 0 or input ends.
func (c *Console) Run(ctx context.Context) error {
	actions := map[string]func(context.Context, repositories.Session) error{
		"1": c.listStudents,
		"2": c.coursesByDepartment,
		"3": c.coursesOfStudent,
		"4": c.enroll,
		"5": c.updateStudent,
		"6": c.deleteCourse,
		"7": c.enrollmentReport,
		"8": c.assignGrade,
	}

	for {
		fmt.Fprintln(c.out, menu)
		choice, err := c.ask("Select an option: ")
		if err != nil {
			return ignoreEnd(err)
		}
		if choice == "0" {
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(c.out, "Invalid choice!")
			continue
		}

		err = repositories.WithSession(ctx, c.store, func(sess repositories.Session) error {
			return action(ctx, sess)
		})
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			return nil
		case err != nil:
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		fmt.Fprintln(c.out)
	}
}

func ignoreEnd(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return nil
	}
	return err
}

func (c *Console) ask(prompt string) (string, error) {
	c.in.SetPrompt(prompt)
	line, err := c.in.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) askID(prompt string) (int64, error) {
	raw, err := c.ask(prompt)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	return id, nil
}

func (c *Console) report(result services.Result, success string) {
	if result.Success {
		fmt.Fprintln(c.out, success)
		return
	}
	fmt.Fprintf(c.out, "Failed: %s\n", result.Message)
}

func (c *Console) table(header string, write func(w io.Writer)) error {
	tw := tabwriter.NewWriter(c.out, 0, 0, 1, ' ', 0)
	fmt.Fprintln(tw, header)
	write(tw)
	return tw.Flush()
}

func formatGrade(g *models.Grade) string {
	if g == nil {
		return "-"
	}
	return g.String()
}

func (c *Console) listStudents(ctx context.Context, sess repositories.Session) error {
	students, err := services.Collect(c.svc.Students.GetAll(ctx, sess))
	if err != nil {
		return err
	}
	return c.table("ID\t| Code\t| Full Name\t| Email", func(w io.Writer) {
		for _, s := range students {
			fmt.Fprintf(w, "%d\t| %s\t| %s\t| %s\n", s.ID, s.Code, s.FullName, s.Email)
		}
	})
}

func (c *Console) coursesByDepartment(ctx context.Context, sess repositories.Session) error {
	id, err := c.askID("Enter Department ID: ")
	if err != nil {
		return err
	}
	courses, err := c.svc.Reports.CoursesByDepartment(ctx, sess, id)
	if err != nil {
		return err
	}
	for _, course := range courses {
		fmt.Fprintf(c.out, "%s - %s (%d credits)\n", course.Code, course.Title, course.Credits)
	}
	return nil
}

func (c *Console) coursesOfStudent(ctx context.Context, sess repositories.Session) error {
	id, err := c.askID("Enter Student ID: ")
	if err != nil {
		return err
	}
	rows, err := c.svc.Reports.CoursesOfStudent(ctx, sess, id)
	if err != nil {
		return err
	}
	return c.table("Course Code\t| Course Title\t| Grade", func(w io.Writer) {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t| %s\t| %s\n", r.CourseCode, r.CourseTitle, formatGrade(r.Grade))
		}
	})
}

func (c *Console) enroll(ctx context.Context, sess repositories.Session) error {
	studentID, err := c.askID("Student ID: ")
	if err != nil {
		return err
	}
	courseID, err := c.askID("Course ID: ")
	if err != nil {
		return err
	}
	c.report(c.svc.Enrollments.Enroll(ctx, sess, studentID, courseID, c.today()), "Student enrolled successfully!")
	return nil
}

// updateStudent changes name and email. Empty input keeps the current value.
func (c *Console) updateStudent(ctx context.Context, sess repositories.Session) error {
	id, err := c.askID("Enter Student ID: ")
	if err != nil {
		return err
	}
	student, err := c.svc.Students.GetByID(ctx, sess, id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		fmt.Fprintln(c.out, "Student not found!")
		return nil
	}
	if err != nil {
		return err
	}

	name, err := c.ask(fmt.Sprintf("New Full Name [%s]: ", student.FullName))
	if err != nil {
		return err
	}
	email, err := c.ask(fmt.Sprintf("New Email [%s]: ", student.Email))
	if err != nil {
		return err
	}
	if name != "" {
		student.FullName = name
	}
	if email != "" {
		student.Email = email
	}
	c.report(c.svc.Students.Update(ctx, sess, student), "Student updated!")
	return nil
}

func (c *Console) deleteCourse(ctx context.Context, sess repositories.Session) error {
	id, err := c.askID("Enter Course ID: ")
	if err != nil {
		return err
	}
	c.report(c.svc.Courses.Delete(ctx, sess, id), "Course deleted!")
	return nil
}

func (c *Console) enrollmentReport(ctx context.Context, sess repositories.Session) error {
	rows, err := c.svc.Reports.EnrollmentReport(ctx, sess)
	if err != nil {
		return err
	}
	return c.table("Student\t| Course\t| Grade", func(w io.Writer) {
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t| %s\t| %s\n", r.StudentName, r.CourseTitle, formatGrade(r.Grade))
		}
	})
}

func (c *Console) assignGrade(ctx context.Context, sess repositories.Session) error {
	studentID, err := c.askID("Student ID: ")
	if err != nil {
		return err
	}
	courseID, err := c.askID("Course ID: ")
	if err != nil {
		return err
	}
	raw, err := c.ask("Grade (0-10): ")
	if err != nil {
		return err
	}
	grade, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", errInvalidNumber, raw)
	}
	c.report(c.svc.Enrollments.AssignGrade(ctx, sess, studentID, courseID, grade), "Grade assigned successfully!")
	return nil
}

func (c *Console) today() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
