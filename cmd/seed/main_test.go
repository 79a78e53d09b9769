package main

import (
	"context"
	"testing"

	"customer-portal/internal/config"
	"customer-portal/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunFailsWhenDatabaseIsUnreachable(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr string
	}{
		{"seed", options{}, "failed to run migrations"},
		{"schema only", options{schemaOnly: true}, "failed to run migrations"},
		{"reset", options{reset: true}, "failed to reset migrations"},
		{"status", options{status: true}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := database.Open("postgres://portal@127.0.0.1:1/portal?sslmode=disable&connect_timeout=1", 1, zap.NewNop())
			defer db.Close()

			err := run(context.Background(), db, zap.NewNop(), tt.opts)
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestRunRejectsMalformedDSN(t *testing.T) {
	cfg := config.DatabaseConfig{Host: "db", Port: "not-a-port", Database: "portal", SSLMode: "disable"}
	db := database.Open(cfg.DSN(), 1, zap.NewNop())
	defer db.Close()

	err := run(context.Background(), db, zap.NewNop(), options{})
	assert.ErrorIs(t, err, database.ErrQueryFailed)
	assert.ErrorContains(t, err, "failed to open database")
}
