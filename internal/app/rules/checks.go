package rules

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// Finder looks an entity up by its ID. Repositories satisfy it.
type Finder[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
}

// IsUnique reports whether no candidate other than the excluded IDs carries value.
func IsUnique[T any](candidates []T, value string, key func(T) string, id func(T) int64, excluding ...int64) bool {
	for _, c := range candidates {
		if slices.Contains(excluding, id(c)) {
			continue
		}
		if key(c) == value {
			return false
		}
	}
	return true
}

// Exists reports whether finder resolves id. A not-found error is a plain false;
// any other error is returned.
func Exists[T any](ctx context.Context, finder Finder[T], id int64) (bool, error) {
	entity, err := finder.GetByID(ctx, id)
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return entity != nil, nil
}

// InRange reports whether min <= value <= max.
func InRange[N cmp.Ordered](value, min, max N) bool {
	return value >= min && value <= max
}

// IsOfAge reports whether someone born on birthDate has turned minYears by asOf.
// Only calendar days are compared. A Feb 29 birthday falls on Feb 28 in
// common years.
func IsOfAge(birthDate time.Time, minYears int, asOf time.Time) bool {
	return !addYears(DateOnly(birthDate), minYears).After(DateOnly(asOf))
}

// addYears shifts t by years, clamping the day to the end of the target month
// instead of rolling over into the next one.
func addYears(t time.Time, years int) time.Time {
	y, m, d := t.Date()
	last := time.Date(y+years, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return time.Date(y+years, m, min(d, last), 0, 0, 0, 0, t.Location())
}

// HasValidName rejects blank names and names shorter than minLen characters.
func HasValidName(name string, minLen int) bool {
	return strings.TrimSpace(name) != "" && utf8.RuneCountInString(name) >= minLen
}

// HasDepartmentReference reports whether id points at something other than zero.
func HasDepartmentReference(id *int64) bool {
	return id != nil && *id != 0
}

// SameDepartment compares two optional department references. Two absent
// references compare equal.
func SameDepartment(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// IsBeforeDay reports whether date falls on an earlier calendar day than today.
func IsBeforeDay(date, today time.Time) bool {
	return DateOnly(date).Before(DateOnly(today))
}

// DaysElapsed counts calendar days from the day of start to the day of now,
// each read in its own location. Negative when now precedes start.
func DaysElapsed(start, now time.Time) int {
	return int(DateOnly(now).Sub(DateOnly(start)) / (24 * time.Hour))
}

// WithinWindow reports whether no more than days calendar days separate start and now.
func WithinWindow(start, now time.Time, days int) bool {
	return DaysElapsed(start, now) <= days
}

// DateOnly returns midnight UTC of the calendar day t falls on in its own
// location. Days of different zones then compare as plain dates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
