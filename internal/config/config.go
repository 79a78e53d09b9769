package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Identity  IdentityConfig
	Assembler AssemblerConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host              string
	Port              string
	User              string
	Password          string
	Database          string
	Schema            string
	SSLMode           string
	MaxConns          int32
	MigrationsEnabled bool
}

// DSN builds a postgres connection URL for pgx.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     d.Host + ":" + d.Port,
		Path:     "/" + d.Database,
		RawQuery: fmt.Sprintf("sslmode=%s&search_path=%s", url.QueryEscape(d.SSLMode), url.QueryEscape(d.Schema)),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Addr returns host:port for the redis client.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type IdentityConfig struct {
	Header           string
	AllowRawFallback bool
}

type AssemblerConfig struct {
	ParallelDependents bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// IsDevelopment reports whether the server runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

func Load() *Config {
	// .env is optional; real deployments inject plain environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: no .env file loaded: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_DATABASE", "customer_portal")
	v.SetDefault("DB_SCHEMA", "public")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MIGRATIONS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	v.SetDefault("IDENTITY_HEADER", "X-MS-CLIENT-PRINCIPAL")
	v.SetDefault("IDENTITY_ALLOW_RAW_FALLBACK", true)
	v.SetDefault("ASSEMBLER_PARALLEL_DEPENDENTS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
			Env:  v.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetString("DB_PORT"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASSWORD"),
			Database:          v.GetString("DB_DATABASE"),
			Schema:            v.GetString("DB_SCHEMA"),
			SSLMode:           v.GetString("DB_SSLMODE"),
			MaxConns:          v.GetInt32("DB_MAX_CONNS"),
			MigrationsEnabled: v.GetBool("MIGRATIONS_ENABLED"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Enabled:  v.GetBool("RATE_LIMIT_ENABLED"),
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   time.Duration(v.GetInt("RATE_LIMIT_WINDOW_SECONDS")) * time.Second,
		},
		Identity: IdentityConfig{
			Header:           v.GetString("IDENTITY_HEADER"),
			AllowRawFallback: v.GetBool("IDENTITY_ALLOW_RAW_FALLBACK"),
		},
		Assembler: AssemblerConfig{
			ParallelDependents: v.GetBool("ASSEMBLER_PARALLEL_DEPENDENTS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
