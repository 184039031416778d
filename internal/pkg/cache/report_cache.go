// Package cache keeps the enrollment report in Redis between commits.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/models"
	"github.com/yigit/coursemanager/internal/app/rules"
)

// EnrollmentReportKey is where the serialized report lives.
const EnrollmentReportKey = "coursemanager:reports:enrollments"

// ReportCache stores the enrollment report as JSON with a TTL. Any committed
// mutation drops it.
type ReportCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger zerolog.Logger
}

// NewReportCache creates a Redis backed report cache. A zero ttl keeps the
// entry until the next commit.
func NewReportCache(client redis.Cmdable, ttl time.Duration, logger zerolog.Logger) *ReportCache {
	return &ReportCache{
		client: client,
		ttl:    ttl,
		logger: logger.With().Str("component", "report_cache").Logger(),
	}
}

// GetEnrollmentReport returns the cached report. A missing key is a miss, not an error.
func (c *ReportCache) GetEnrollmentReport(ctx context.Context) ([]models.EnrollmentReportRow, bool, error) {
	data, err := c.client.Get(ctx, EnrollmentReportKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var rows []models.EnrollmentReportRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, false, fmt.Errorf("decode cached report: %w", err)
	}
	return rows, true, nil
}

// SetEnrollmentReport caches rows.
func (c *ReportCache) SetEnrollmentReport(ctx context.Context, rows []models.EnrollmentReportRow) error {
	if rows == nil {
		rows = []models.EnrollmentReportRow{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := c.client.Set(ctx, EnrollmentReportKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate drops the cached report.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, EnrollmentReportKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Committed invalidates the report after every successful save.
func (c *ReportCache) Committed(ctx context.Context, operation string) {
	if err := c.Invalidate(ctx); err != nil {
		c.logger.Warn().Err(err).Str("operation", operation).Msg("Failed to invalidate enrollment report")
	}
}

// RuleViolated is a no-op; nothing was written.
func (c *ReportCache) RuleViolated(string, rules.Code) {}
