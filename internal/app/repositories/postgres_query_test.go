package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemanager/internal/app/models"
)

func newQuerySession() *postgresSession {
	return &postgresSession{sb: newStatementBuilder()}
}

func TestStudentQueriesUseDollarPlaceholders(t *testing.T) {
	r := &StudentPostgresRepository{session: newQuerySession()}

	sql, args, err := r.selectStudents(squirrel.Eq{studentEmail: "an@example.edu"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id, code, full_name, COALESCE(email, ''), date_of_birth, is_active, department_id "+
			"FROM students WHERE COALESCE(email, '') = $1 ORDER BY id", sql)
	assert.Equal(t, []any{"an@example.edu"}, args)

	sql, args, err = r.selectStudents(nil).ToSql()
	require.NoError(t, err)
	assert.NotContains(t, sql, "WHERE")
	assert.Empty(t, args)
}

func TestStudentInsertStoresEmptyEmailAsNull(t *testing.T) {
	sess := newQuerySession()
	insert := sess.sb.Insert("students").
		Columns("id", "email").
		Values(int64(7), nullIfEmpty(""))

	sql, args, err := insert.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "NULLIF($2, '')")
	assert.Equal(t, []any{int64(7), ""}, args)
}

func TestEnrollmentQueriesKeyOnPair(t *testing.T) {
	r := &EnrollmentPostgresRepository{session: newQuerySession()}

	sql, args, err := r.selectEnrollments(pairKey(3, 9)).Limit(1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "FROM enrollments WHERE")
	assert.Contains(t, sql, "course_id = $1")
	assert.Contains(t, sql, "student_id = $2")
	assert.Contains(t, sql, "ORDER BY student_id, course_id LIMIT 1")
	assert.Equal(t, []any{int64(9), int64(3)}, args)
}

func TestEnrollmentGradeCastsToFloat(t *testing.T) {
	grade := models.NewGrade(8.5)

	sql, args, err := gradeParam(&grade).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "?::float8", sql)
	require.Len(t, args, 1)
	require.NotNil(t, args[0])
	assert.InDelta(t, 8.5, *args[0].(*float64), 1e-9)

	_, args, err = gradeParam(nil).ToSql()
	require.NoError(t, err)
	assert.Nil(t, args[0].(*float64))
}

func TestCourseUpdateTargetsID(t *testing.T) {
	sess := newQuerySession()
	update := sess.sb.Update("courses").
		SetMap(map[string]any{"credits": 4, "title": "Databases"}).
		Where(squirrel.Eq{"id": int64(2)})

	sql, args, err := update.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE courses SET credits = $1, title = $2 WHERE id = $3", sql)
	assert.Equal(t, []any{4, "Databases", int64(2)}, args)
}
