package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"customer-portal/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// ErrQueryFailed wraps every failure surfaced by the executor, including a
// failed pool initialization.
var ErrQueryFailed = errors.New("query failed")

var errPoolClosed = errors.New("database pool closed")

// Querier runs parameterized statements. Parameters are always bound by
// name (@name placeholders); values are never interpolated into SQL text.
type Querier interface {
	Query(ctx context.Context, sql string, args pgx.NamedArgs) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args pgx.NamedArgs) pgx.Row
	Exec(ctx context.Context, sql string, args pgx.NamedArgs) (pgconn.CommandTag, error)
}

// Service is the process-wide query executor.
type Service interface {
	Querier

	// Health returns a map of health status information.
	Health(ctx context.Context) map[string]string

	// StdDB exposes the pool as a *sql.DB for tooling such as goose.
	StdDB() (*sql.DB, error)

	// Close tears the pool down. Safe to call more than once.
	Close()
}

type service struct {
	dsn      string
	maxConns int32
	logger   *zap.Logger

	once    sync.Once
	pool    *pgxpool.Pool
	initErr error

	closeOnce sync.Once
}

var (
	instanceMu sync.Mutex
	instance   *service
)

// New returns the process-wide executor, creating it on the first call.
// The connection pool itself is opened lazily on first use.
func New(cfg config.DatabaseConfig, logger *zap.Logger) Service {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		return instance
	}
	instance = newService(cfg.DSN(), cfg.MaxConns, logger)
	return instance
}

// Open returns an executor that is not shared with the rest of the process.
// Integration tests use it to point at a throwaway database.
func Open(dsn string, maxConns int32, logger *zap.Logger) Service {
	return newService(dsn, maxConns, logger)
}

func newService(dsn string, maxConns int32, logger *zap.Logger) *service {
	return &service{
		dsn:      dsn,
		maxConns: maxConns,
		logger:   logger,
	}
}

func (s *service) connect() (*pgxpool.Pool, error) {
	s.once.Do(func() {
		poolCfg, err := pgxpool.ParseConfig(s.dsn)
		if err != nil {
			s.initErr = fmt.Errorf("failed to parse database config: %w", err)
			s.logger.Error("Database pool initialization failed", zap.Error(err))
			return
		}
		if s.maxConns > 0 {
			poolCfg.MaxConns = s.maxConns
		}

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			s.initErr = fmt.Errorf("failed to create connection pool: %w", err)
			s.logger.Error("Database pool initialization failed", zap.Error(err))
			return
		}

		s.pool = pool
		s.logger.Info("Database pool initialized",
			zap.String("host", poolCfg.ConnConfig.Host),
			zap.String("database", poolCfg.ConnConfig.Database),
			zap.Int32("max_conns", poolCfg.MaxConns),
		)
	})
	if s.initErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, s.initErr)
	}
	return s.pool, nil
}

func (s *service) Query(ctx context.Context, sql string, args pgx.NamedArgs) (pgx.Rows, error) {
	pool, err := s.connect()
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return wrappedRows{Rows: rows}, nil
}

func (s *service) QueryRow(ctx context.Context, sql string, args pgx.NamedArgs) pgx.Row {
	pool, err := s.connect()
	if err != nil {
		return errRow{err: err}
	}
	return wrappedRow{row: pool.QueryRow(ctx, sql, args)}
}

func (s *service) Exec(ctx context.Context, sql string, args pgx.NamedArgs) (pgconn.CommandTag, error) {
	pool, err := s.connect()
	if err != nil {
		return pgconn.CommandTag{}, err
	}

	tag, err := pool.Exec(ctx, sql, args)
	if err != nil {
		return tag, fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return tag, nil
}

func (s *service) Health(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stats := make(map[string]string)

	pool, err := s.connect()
	if err != nil {
		stats["status"] = "down"
		stats["error"] = "database unavailable"
		return stats
	}

	if err := pool.Ping(ctx); err != nil {
		s.logger.Warn("Database ping failed", zap.Error(err))
		stats["status"] = "down"
		stats["error"] = "database unavailable"
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	poolStats := pool.Stat()
	stats["total_connections"] = strconv.Itoa(int(poolStats.TotalConns()))
	stats["idle_connections"] = strconv.Itoa(int(poolStats.IdleConns()))
	stats["acquired_connections"] = strconv.Itoa(int(poolStats.AcquiredConns()))
	stats["max_connections"] = strconv.Itoa(int(poolStats.MaxConns()))
	stats["acquire_count"] = strconv.FormatInt(poolStats.AcquireCount(), 10)

	if poolStats.AcquiredConns() > poolStats.MaxConns()*8/10 {
		stats["message"] = "The database is experiencing heavy load."
	}

	return stats
}

func (s *service) StdDB() (*sql.DB, error) {
	pool, err := s.connect()
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDBFromPool(pool), nil
}

func (s *service) Close() {
	s.closeOnce.Do(func() {
		instanceMu.Lock()
		if instance == s {
			instance = nil
		}
		instanceMu.Unlock()

		// An executor closed before first use must not open a pool later.
		s.once.Do(func() { s.initErr = errPoolClosed })

		if s.pool != nil {
			s.logger.Info("Closing database pool")
			s.pool.Close()
		}
	})
}

type wrappedRows struct {
	pgx.Rows
}

func (r wrappedRows) Err() error {
	if err := r.Rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return nil
}

type wrappedRow struct {
	row pgx.Row
}

func (r wrappedRow) Scan(dest ...any) error {
	if err := r.row.Scan(dest...); err != nil {
		return fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}
	return nil
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

// IsUniqueViolation reports whether err carries a postgres unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
