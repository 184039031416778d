package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/services"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// Services are the writers used to load demo data. Going through them keeps
// the seed subject to the same business rules as any other caller.
type Services struct {
	Departments *services.DepartmentService
	Students    *services.StudentService
	Courses     *services.CourseService
	Enrollments *services.EnrollmentService
}

func dob(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateDefaultData loads a small demo data set unless department 1 already exists.
func CreateDefaultData(ctx context.Context, uow repositories.UnitOfWork, svc Services, today time.Time, lgr zerolog.Logger) error {
	return repositories.WithSession(ctx, uow, func(sess repositories.Session) error {
		_, err := sess.Departments().GetByID(ctx, 1)
		if err == nil {
			lgr.Info().Msg("Demo data already present, skipping seed")
			return nil
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return fmt.Errorf("failed to check existing data: %w", err)
		}

		lgr.Info().Msg("Creating demo data...")
		var results []services.Result

		for _, d := range []models.Department{
			{ID: 1, Name: "Software Engineering", Description: models.StringPtr("Programming and systems")},
			{ID: 2, Name: "Business Administration", Description: models.StringPtr("Management and finance")},
		} {
			results = append(results, svc.Departments.Create(ctx, sess, &d))
		}

		students := []models.Student{
			{ID: 1, Code: "SE001", FullName: "Nguyen Van An", Email: "an@example.edu", DateOfBirth: dob(2003, time.March, 14), IsActive: true, DepartmentID: models.Int64Ptr(1)},
			{ID: 2, Code: "SE002", FullName: "Tran Thi Binh", DateOfBirth: dob(2002, time.October, 2), IsActive: true, DepartmentID: models.Int64Ptr(1)},
			{ID: 3, Code: "BA001", FullName: "Le Van Cuong", Email: "cuong@example.edu", DateOfBirth: dob(2004, time.January, 21), IsActive: true, DepartmentID: models.Int64Ptr(2)},
		}
		for i := range students {
			results = append(results, svc.Students.Create(ctx, sess, &students[i]))
		}

		courses := []models.Course{
			{ID: 1, Code: "PRN222", Title: "Advanced Cross-Platform Programming", Credits: 3, IsActive: true, DepartmentID: models.Int64Ptr(1)},
			{ID: 2, Code: "DBI202", Title: "Database Systems", Credits: 3, IsActive: true, DepartmentID: models.Int64Ptr(1)},
			{ID: 3, Code: "MKT101", Title: "Marketing Principles", Credits: 2, IsActive: true, DepartmentID: models.Int64Ptr(2)},
		}
		for i := range courses {
			results = append(results, svc.Courses.Create(ctx, sess, &courses[i]))
		}

		results = append(results,
			svc.Enrollments.Enroll(ctx, sess, 1, 1, today),
			svc.Enrollments.Enroll(ctx, sess, 2, 2, today),
			svc.Enrollments.Enroll(ctx, sess, 3, 3, today),
		)

		var errs error
		for _, r := range results {
			if !r.Success {
				errs = errors.Join(errs, errors.New(r.Message))
			}
		}
		if errs != nil {
			return fmt.Errorf("demo data rejected: %w", errs)
		}
		lgr.Info().Int("operations", len(results)).Msg("Demo data created")
		return nil
	})
}
