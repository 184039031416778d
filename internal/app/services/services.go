// Package services implements the course management operations. Every
// operation takes the caller's repositories.Session, evaluates its rule chain
// in a fixed order and reports the outcome as a Result. Rule violations are
// never returned as Go errors.
//
// Services defined in this package:
// - DepartmentService: department CRUD guarded by BR01-BR04
// - StudentService: student CRUD guarded by BR05-BR10
// - CourseService: course CRUD guarded by BR11-BR15
// - EnrollmentService: enrollment lifecycle, BR16-BR30
// - ReportService: read-only reports and XLSX export
// - RosterImporter: bulk student creation from a workbook
package services

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/coursemanager/internal/app/repositories"
	"github.com/yigit/coursemanager/internal/app/rules"
	"github.com/yigit/coursemanager/internal/pkg/apperrors"
)

// DefaultSuccessMessage is reported by operations without a specific message.
const DefaultSuccessMessage = "Success"

// Result is the uniform outcome of a mutating operation.
type Result struct {
	Success bool       `json:"isSuccess"`
	Message string     `json:"message"`
	Code    rules.Code `json:"code,omitempty"`
}

// Succeeded builds a success result.
func Succeeded(message string) Result {
	if message == "" {
		message = DefaultSuccessMessage
	}
	return Result{Success: true, Message: message}
}

// Failed builds a failure result from a violation. The message starts with the rule code.
func Failed(v rules.Violation) Result {
	return Result{Success: false, Message: v.Message(), Code: v.Code}
}

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// base carries what every service shares: logging, outcome hooks and time.
type base struct {
	logger   zerolog.Logger
	observer Observer
	now      Clock
}

func newBase(logger zerolog.Logger, observer Observer, clock Clock, component string) base {
	if observer == nil {
		observer = NopObserver{}
	}
	if clock == nil {
		clock = time.Now
	}
	return base{
		logger:   logger.With().Str("service", component).Logger(),
		observer: observer,
		now:      clock,
	}
}

// reject reports a rule violation.
func (b base) reject(op string, v rules.Violation) Result {
	b.logger.Debug().Str("operation", op).Str("code", string(v.Code)).Msg("Business rule violated")
	b.observer.RuleViolated(op, v.Code)
	return Failed(v)
}

// abort rolls the session back after a storage error and reports BR24.
func (b base) abort(ctx context.Context, sess repositories.Session, op string, err error, v rules.Violation) Result {
	evt := b.logger.Error().Err(err).Str("operation", op)
	if rbErr := sess.Rollback(ctx); rbErr != nil {
		evt = evt.AnErr("rollbackError", rbErr)
	}
	evt.Msg("Persistence failure, changes rolled back")
	b.observer.RuleViolated(op, v.Code)
	return Failed(v)
}

// storageFailure is the default BR24 violation.
func storageFailure() rules.Violation {
	return rules.Violate(rules.TransactionFailed)
}

// commit saves the session and reports success with message.
func (b base) commit(ctx context.Context, sess repositories.Session, op, message string) Result {
	n, err := sess.Save(ctx)
	if err != nil {
		return b.abort(ctx, sess, op, err, storageFailure())
	}
	b.logger.Info().Str("operation", op).Int("rows", n).Msg("Changes committed")
	b.observer.Committed(ctx, op)
	return Succeeded(message)
}

// missing reports whether err is a not-found lookup.
func missing(err error) bool {
	return errors.Is(err, apperrors.ErrResourceNotFound)
}

// sequence adapts a bulk loader into a lazy sequence. Each range over it
// reloads from storage; a load error is yielded once with the zero value.
func sequence[T any](ctx context.Context, load func(context.Context) ([]T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		items, err := load(ctx)
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	items := make([]T, 0)
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
