package repositories

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// Compile-time contract assertions.
var (
	_ UnitOfWork = (*MemoryStore)(nil)
	_ Session    = (*memorySession)(nil)
)

type memoryState struct {
	departments map[int64]models.Department
	students    map[int64]models.Student
	courses     map[int64]models.Course
	enrollments map[models.EnrollmentKey]models.Enrollment
}

func newMemoryState() memoryState {
	return memoryState{
		departments: make(map[int64]models.Department),
		students:    make(map[int64]models.Student),
		courses:     make(map[int64]models.Course),
		enrollments: make(map[models.EnrollmentKey]models.Enrollment),
	}
}

func (s memoryState) clone() memoryState {
	c := memoryState{
		departments: make(map[int64]models.Department, len(s.departments)),
		students:    make(map[int64]models.Student, len(s.students)),
		courses:     make(map[int64]models.Course, len(s.courses)),
		enrollments: make(map[models.EnrollmentKey]models.Enrollment, len(s.enrollments)),
	}
	for k, v := range s.departments {
		c.departments[k] = cloneDepartment(v)
	}
	for k, v := range s.students {
		c.students[k] = cloneStudent(v)
	}
	for k, v := range s.courses {
		c.courses[k] = cloneCourse(v)
	}
	for k, v := range s.enrollments {
		c.enrollments[k] = cloneEnrollment(v)
	}
	return c
}

// checkConstraints mirrors the unique indexes and foreign keys of the SQL schema.
func (s memoryState) checkConstraints() error {
	studentCodes := make(map[string]int64, len(s.students))
	studentEmails := make(map[string]int64, len(s.students))
	for _, st := range s.students {
		if other, ok := studentCodes[st.Code]; ok {
			return fmt.Errorf("student code %q used by %d and %d: %w", st.Code, other, st.ID, apperrors.ErrResourceAlreadyExists)
		}
		studentCodes[st.Code] = st.ID
		if st.Email != "" {
			if other, ok := studentEmails[st.Email]; ok {
				return fmt.Errorf("student email %q used by %d and %d: %w", st.Email, other, st.ID, apperrors.ErrResourceAlreadyExists)
			}
			studentEmails[st.Email] = st.ID
		}
		if st.DepartmentID != nil {
			if _, ok := s.departments[*st.DepartmentID]; !ok {
				return fmt.Errorf("student %d references department %d: %w", st.ID, *st.DepartmentID, apperrors.ErrConflict)
			}
		}
	}

	courseCodes := make(map[string]int64, len(s.courses))
	for _, c := range s.courses {
		if other, ok := courseCodes[c.Code]; ok {
			return fmt.Errorf("course code %q used by %d and %d: %w", c.Code, other, c.ID, apperrors.ErrResourceAlreadyExists)
		}
		courseCodes[c.Code] = c.ID
		if c.DepartmentID != nil {
			if _, ok := s.departments[*c.DepartmentID]; !ok {
				return fmt.Errorf("course %d references department %d: %w", c.ID, *c.DepartmentID, apperrors.ErrConflict)
			}
		}
	}

	for k := range s.enrollments {
		if _, ok := s.students[k.StudentID]; !ok {
			return fmt.Errorf("enrollment references student %d: %w", k.StudentID, apperrors.ErrConflict)
		}
		if _, ok := s.courses[k.CourseID]; !ok {
			return fmt.Errorf("enrollment references course %d: %w", k.CourseID, apperrors.ErrConflict)
		}
	}
	return nil
}

// mutation is one staged change. It reports the number of rows it touched.
type mutation func(*memoryState) (int, error)

// MemoryStore is an in-process UnitOfWork. Committed state is only replaced
// as a whole, so a failed Save leaves it untouched.
type MemoryStore struct {
	mu    sync.RWMutex
	state memoryState
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemoryState()}
}

// Begin opens a session over a snapshot of the committed state.
func (s *MemoryStore) Begin(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sess := &memorySession{store: s, working: s.snapshot()}
	return sess, nil
}

func (s *MemoryStore) snapshot() memoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *MemoryStore) commit(pending []mutation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	affected := 0
	for _, m := range pending {
		n, err := m(&next)
		if err != nil {
			return 0, err
		}
		affected += n
	}
	if err := next.checkConstraints(); err != nil {
		return 0, err
	}
	s.state = next
	return affected, nil
}

type memorySession struct {
	store   *MemoryStore
	working memoryState
	pending []mutation
}

func (s *memorySession) Departments() DepartmentRepository { return memoryDepartments{s} }
func (s *memorySession) Students() StudentRepository       { return memoryStudents{s} }
func (s *memorySession) Courses() CourseRepository         { return memoryCourses{s} }
func (s *memorySession) Enrollments() EnrollmentRepository { return memoryEnrollments{s} }

// stage applies m to the working copy right away, so reads in the same
// session observe it, and queues it for Save.
func (s *memorySession) stage(ctx context.Context, m mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := m(&s.working); err != nil {
		return err
	}
	s.pending = append(s.pending, m)
	return nil
}

func (s *memorySession) Save(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(s.pending) == 0 {
		return 0, nil
	}
	affected, err := s.store.commit(s.pending)
	if err != nil {
		return 0, fmt.Errorf("failed to commit session: %w", err)
	}
	s.pending = nil
	s.working = s.store.snapshot()
	return affected, nil
}

func (s *memorySession) Rollback(_ context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}
	s.pending = nil
	s.working = s.store.snapshot()
	return nil
}

func sortedValues[K comparable, V any](m map[K]V, less func(a, b V) int) []V {
	values := slices.Collect(maps.Values(m))
	slices.SortFunc(values, less)
	return values
}

func filterValues[V any](values []V, keep func(V) bool) []V {
	out := make([]V, 0)
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// --- Departments ---

type memoryDepartments struct{ s *memorySession }

func byDepartmentID(a, b models.Department) int { return cmp.Compare(a.ID, b.ID) }

func (r memoryDepartments) GetAll(_ context.Context) ([]models.Department, error) {
	all := sortedValues(r.s.working.departments, byDepartmentID)
	for i := range all {
		all[i] = cloneDepartment(all[i])
	}
	return all, nil
}

func (r memoryDepartments) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := r.s.working.departments[id]
	if !ok {
		return nil, fmt.Errorf("department %d: %w", id, apperrors.ErrResourceNotFound)
	}
	d = cloneDepartment(d)
	return &d, nil
}

func (r memoryDepartments) FindByName(ctx context.Context, name string) ([]models.Department, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(d models.Department) bool { return d.Name == name }), nil
}

func (r memoryDepartments) Add(ctx context.Context, department *models.Department) error {
	d := cloneDepartment(*department)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.departments[d.ID]; exists {
			return 0, fmt.Errorf("department %d: %w", d.ID, apperrors.ErrResourceAlreadyExists)
		}
		st.departments[d.ID] = cloneDepartment(d)
		return 1, nil
	})
}

func (r memoryDepartments) Update(ctx context.Context, department *models.Department) error {
	d := cloneDepartment(*department)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.departments[d.ID]; !exists {
			return 0, fmt.Errorf("department %d: %w", d.ID, apperrors.ErrResourceNotFound)
		}
		st.departments[d.ID] = cloneDepartment(d)
		return 1, nil
	})
}

func (r memoryDepartments) Delete(ctx context.Context, id int64) error {
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.departments[id]; !exists {
			return 0, nil
		}
		delete(st.departments, id)
		return 1, nil
	})
}

// --- Students ---

type memoryStudents struct{ s *memorySession }

func byStudentID(a, b models.Student) int { return cmp.Compare(a.ID, b.ID) }

func (r memoryStudents) GetAll(_ context.Context) ([]models.Student, error) {
	all := sortedValues(r.s.working.students, byStudentID)
	for i := range all {
		all[i] = cloneStudent(all[i])
	}
	return all, nil
}

func (r memoryStudents) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := r.s.working.students[id]
	if !ok {
		return nil, fmt.Errorf("student %d: %w", id, apperrors.ErrResourceNotFound)
	}
	st = cloneStudent(st)
	return &st, nil
}

func (r memoryStudents) FindByCode(ctx context.Context, code string) ([]models.Student, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(st models.Student) bool { return st.Code == code }), nil
}

func (r memoryStudents) FindByEmail(ctx context.Context, email string) ([]models.Student, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(st models.Student) bool { return st.Email == email }), nil
}

func (r memoryStudents) FindByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(st models.Student) bool {
		return st.DepartmentID != nil && *st.DepartmentID == departmentID
	}), nil
}

func (r memoryStudents) Add(ctx context.Context, student *models.Student) error {
	st := cloneStudent(*student)
	return r.s.stage(ctx, func(state *memoryState) (int, error) {
		if _, exists := state.students[st.ID]; exists {
			return 0, fmt.Errorf("student %d: %w", st.ID, apperrors.ErrResourceAlreadyExists)
		}
		state.students[st.ID] = cloneStudent(st)
		return 1, nil
	})
}

func (r memoryStudents) Update(ctx context.Context, student *models.Student) error {
	st := cloneStudent(*student)
	return r.s.stage(ctx, func(state *memoryState) (int, error) {
		if _, exists := state.students[st.ID]; !exists {
			return 0, fmt.Errorf("student %d: %w", st.ID, apperrors.ErrResourceNotFound)
		}
		state.students[st.ID] = cloneStudent(st)
		return 1, nil
	})
}

func (r memoryStudents) Delete(ctx context.Context, id int64) error {
	return r.s.stage(ctx, func(state *memoryState) (int, error) {
		if _, exists := state.students[id]; !exists {
			return 0, nil
		}
		delete(state.students, id)
		return 1, nil
	})
}

// --- Courses ---

type memoryCourses struct{ s *memorySession }

func byCourseID(a, b models.Course) int { return cmp.Compare(a.ID, b.ID) }

func (r memoryCourses) GetAll(_ context.Context) ([]models.Course, error) {
	all := sortedValues(r.s.working.courses, byCourseID)
	for i := range all {
		all[i] = cloneCourse(all[i])
	}
	return all, nil
}

func (r memoryCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := r.s.working.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %d: %w", id, apperrors.ErrResourceNotFound)
	}
	c = cloneCourse(c)
	return &c, nil
}

func (r memoryCourses) FindByCode(ctx context.Context, code string) ([]models.Course, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(c models.Course) bool { return c.Code == code }), nil
}

func (r memoryCourses) FindByDepartment(ctx context.Context, departmentID int64) ([]models.Course, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(c models.Course) bool {
		return c.DepartmentID != nil && *c.DepartmentID == departmentID
	}), nil
}

func (r memoryCourses) Add(ctx context.Context, course *models.Course) error {
	c := cloneCourse(*course)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.courses[c.ID]; exists {
			return 0, fmt.Errorf("course %d: %w", c.ID, apperrors.ErrResourceAlreadyExists)
		}
		st.courses[c.ID] = cloneCourse(c)
		return 1, nil
	})
}

func (r memoryCourses) Update(ctx context.Context, course *models.Course) error {
	c := cloneCourse(*course)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.courses[c.ID]; !exists {
			return 0, fmt.Errorf("course %d: %w", c.ID, apperrors.ErrResourceNotFound)
		}
		st.courses[c.ID] = cloneCourse(c)
		return 1, nil
	})
}

func (r memoryCourses) Delete(ctx context.Context, id int64) error {
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.courses[id]; !exists {
			return 0, nil
		}
		delete(st.courses, id)
		return 1, nil
	})
}

// --- Enrollments ---

type memoryEnrollments struct{ s *memorySession }

func byEnrollmentKey(a, b models.Enrollment) int {
	if c := cmp.Compare(a.StudentID, b.StudentID); c != 0 {
		return c
	}
	return cmp.Compare(a.CourseID, b.CourseID)
}

func (r memoryEnrollments) GetAll(_ context.Context) ([]models.Enrollment, error) {
	all := sortedValues(r.s.working.enrollments, byEnrollmentKey)
	for i := range all {
		all[i] = cloneEnrollment(all[i])
	}
	return all, nil
}

func (r memoryEnrollments) FindByStudentAndCourse(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	e, ok := r.s.working.enrollments[models.EnrollmentKey{StudentID: studentID, CourseID: courseID}]
	if !ok {
		return nil, fmt.Errorf("enrollment (%d, %d): %w", studentID, courseID, apperrors.ErrResourceNotFound)
	}
	e = cloneEnrollment(e)
	return &e, nil
}

func (r memoryEnrollments) FindByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(e models.Enrollment) bool { return e.StudentID == studentID }), nil
}

func (r memoryEnrollments) FindByCourse(ctx context.Context, courseID int64) ([]models.Enrollment, error) {
	all, _ := r.GetAll(ctx)
	return filterValues(all, func(e models.Enrollment) bool { return e.CourseID == courseID }), nil
}

func (r memoryEnrollments) Add(ctx context.Context, enrollment *models.Enrollment) error {
	e := cloneEnrollment(*enrollment)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.enrollments[e.Key()]; exists {
			return 0, fmt.Errorf("enrollment (%d, %d): %w", e.StudentID, e.CourseID, apperrors.ErrResourceAlreadyExists)
		}
		st.enrollments[e.Key()] = cloneEnrollment(e)
		return 1, nil
	})
}

func (r memoryEnrollments) Update(ctx context.Context, enrollment *models.Enrollment) error {
	e := cloneEnrollment(*enrollment)
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.enrollments[e.Key()]; !exists {
			return 0, fmt.Errorf("enrollment (%d, %d): %w", e.StudentID, e.CourseID, apperrors.ErrResourceNotFound)
		}
		st.enrollments[e.Key()] = cloneEnrollment(e)
		return 1, nil
	})
}

func (r memoryEnrollments) Delete(ctx context.Context, studentID, courseID int64) error {
	key := models.EnrollmentKey{StudentID: studentID, CourseID: courseID}
	return r.s.stage(ctx, func(st *memoryState) (int, error) {
		if _, exists := st.enrollments[key]; !exists {
			return 0, nil
		}
		delete(st.enrollments, key)
		return 1, nil
	})
}

// --- cloning ---

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneDepartment(d models.Department) models.Department {
	if d.Description != nil {
		desc := *d.Description
		d.Description = &desc
	}
	return d
}

func cloneStudent(s models.Student) models.Student {
	s.DepartmentID = cloneInt64(s.DepartmentID)
	return s
}

func cloneCourse(c models.Course) models.Course {
	c.DepartmentID = cloneInt64(c.DepartmentID)
	c.Department = nil
	return c
}

func cloneEnrollment(e models.Enrollment) models.Enrollment {
	if e.Grade != nil {
		g := *e.Grade
		e.Grade = &g
	}
	return e
}
