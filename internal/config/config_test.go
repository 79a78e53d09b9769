package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.True(t, cfg.Database.MigrationsEnabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "X-MS-CLIENT-PRINCIPAL", cfg.Identity.Header)
	assert.True(t, cfg.Identity.AllowRawFallback)
	assert.False(t, cfg.Assembler.ParallelDependents)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ASSEMBLER_PARALLEL_DEPENDENTS", "true")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	cfg := fromViper(v)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Assembler.ParallelDependents)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: "5432", User: "portal", Password: "secret",
		Database: "shop", Schema: "public", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://portal:secret@db:5432/shop?sslmode=disable&search_path=public", d.DSN())
}
