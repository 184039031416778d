package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/coursemanager/internal/pkg/apperrors"
	"github.com/yigit/coursemanager/internal/pkg/dberrors"
)

var (
	_ UnitOfWork = (*PostgresStore)(nil)
	_ Session    = (*postgresSession)(nil)
)

// PostgresStore hands out sessions backed by one database transaction each.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an open pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Begin returns a session. The transaction is opened on first use.
func (s *PostgresStore) Begin(ctx context.Context) (Session, error) {
	if s.pool == nil {
		return nil, apperrors.ErrStoreNotReady
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &postgresSession{pool: s.pool, sb: newStatementBuilder()}, nil
}

// newStatementBuilder returns a squirrel builder producing $n placeholders.
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// querier is the subset of pgx.Tx the repositories use.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type postgresSession struct {
	pool     *pgxpool.Pool
	sb       squirrel.StatementBuilderType
	tx       pgx.Tx
	affected int
}

func (s *postgresSession) Departments() DepartmentRepository {
	return &DepartmentPostgresRepository{session: s}
}

func (s *postgresSession) Students() StudentRepository {
	return &StudentPostgresRepository{session: s}
}

func (s *postgresSession) Courses() CourseRepository {
	return &CoursePostgresRepository{session: s}
}

func (s *postgresSession) Enrollments() EnrollmentRepository {
	return &EnrollmentPostgresRepository{session: s}
}

// q returns the open transaction, beginning one if needed. Reads run inside it
// too so they observe the session's own pending writes.
func (s *postgresSession) q(ctx context.Context) (querier, error) {
	if s.tx == nil {
		tx, err := s.pool.Begin(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}
	return s.tx, nil
}

// build renders a statement, keeping the builder error distinct from
// execution errors.
func build(b squirrel.Sqlizer) (string, []any, error) {
	sql, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}
	return sql, args, nil
}

// query runs a built SELECT inside the session transaction.
func (s *postgresSession) query(ctx context.Context, b squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := build(b)
	if err != nil {
		return nil, err
	}
	q, err := s.q(ctx)
	if err != nil {
		return nil, err
	}
	return q.Query(ctx, sql, args...)
}

// queryRow runs a built single-row SELECT inside the session transaction.
func (s *postgresSession) queryRow(ctx context.Context, b squirrel.Sqlizer) (pgx.Row, error) {
	sql, args, err := build(b)
	if err != nil {
		return nil, err
	}
	q, err := s.q(ctx)
	if err != nil {
		return nil, err
	}
	return q.QueryRow(ctx, sql, args...), nil
}

// exec runs a built mutating statement and tracks the affected row count.
func (s *postgresSession) exec(ctx context.Context, b squirrel.Sqlizer) (int64, error) {
	sql, args, err := build(b)
	if err != nil {
		return 0, err
	}
	q, err := s.q(ctx)
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, dberrors.Translate(err)
	}
	s.affected += int(tag.RowsAffected())
	return tag.RowsAffected(), nil
}

func (s *postgresSession) Save(ctx context.Context) (int, error) {
	if s.tx == nil {
		return 0, nil
	}
	tx, affected := s.tx, s.affected
	s.tx, s.affected = nil, 0

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", dberrors.Translate(err))
	}
	return affected, nil
}

func (s *postgresSession) Rollback(ctx context.Context) error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx, s.affected = nil, 0

	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// collect drains rows through scan, closing them on every path.
func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row) (T, error)) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// notFound turns pgx.ErrNoRows into the apperrors sentinel.
func notFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf(format+": %w", append(args, apperrors.ErrResourceNotFound)...)
	}
	return err
}
