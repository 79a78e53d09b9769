package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"customer-portal/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func unreachableConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     "1",
		User:     "portal",
		Password: "portal",
		Database: "portal",
		Schema:   "public",
		SSLMode:  "disable",
		MaxConns: 2,
	}
}

func TestNewReturnsProcessWideInstance(t *testing.T) {
	first := New(unreachableConfig(), zap.NewNop())
	t.Cleanup(first.Close)

	second := New(config.DatabaseConfig{Host: "elsewhere"}, zap.NewNop())
	assert.Same(t, first, second)
}

func TestCloseReleasesInstance(t *testing.T) {
	first := New(unreachableConfig(), zap.NewNop())
	first.Close()
	first.Close()

	second := New(unreachableConfig(), zap.NewNop())
	t.Cleanup(second.Close)
	assert.NotSame(t, first, second)
}

func TestQueryAgainstUnreachableServerWrapsQueryFailed(t *testing.T) {
	db := Open(unreachableConfig().DSN(), 1, zap.NewNop())
	t.Cleanup(db.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Query(ctx, "SELECT 1 WHERE @x = 1", pgx.NamedArgs{"x": 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryFailed)

	_, err = db.Exec(ctx, "SELECT 1", nil)
	assert.ErrorIs(t, err, ErrQueryFailed)

	var one int
	err = db.QueryRow(ctx, "SELECT 1", nil).Scan(&one)
	assert.ErrorIs(t, err, ErrQueryFailed)
}

func TestInitFailureIsSticky(t *testing.T) {
	db := Open("postgres://bad host:not-a-port/db", 1, zap.NewNop())
	t.Cleanup(db.Close)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := db.Query(ctx, "SELECT 1", nil)
		assert.ErrorIs(t, err, ErrQueryFailed)
	}

	_, err := db.StdDB()
	assert.ErrorIs(t, err, ErrQueryFailed)

	health := db.Health(ctx)
	assert.Equal(t, "down", health["status"])
}

func TestClosedBeforeUseNeverConnects(t *testing.T) {
	db := Open(unreachableConfig().DSN(), 1, zap.NewNop())
	db.Close()

	_, err := db.Exec(context.Background(), "SELECT 1", nil)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.ErrorIs(t, err, errPoolClosed)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(errors.Join(ErrQueryFailed, dup)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
