package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/coursemanager/internal/app/rules"
)

func TestCounters(t *testing.T) {
	m := New()

	m.RuleViolated("enrollment.enroll", rules.DuplicateEnrollment)
	m.RuleViolated("enrollment.enroll", rules.DuplicateEnrollment)
	m.RuleViolated("enrollment.enroll", rules.UnderAge)
	m.Committed(context.Background(), "enrollment.enroll")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RuleViolations.WithLabelValues("enrollment.enroll", "BR16")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RuleViolations.WithLabelValues("enrollment.enroll", "BR26")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commits.WithLabelValues("enrollment.enroll")))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/v1/students", http.StatusOK, time.Now())
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Now())

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RuleViolated("course.create", rules.CourseCodeNotUnique)
		m.Committed(context.Background(), "course.create")
		m.ObserveRequest(http.MethodPost, "/api/v1/courses", http.StatusCreated, time.Now())
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.Committed(context.Background(), "student.create")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `coursemanager_commits_total{operation="student.create"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
