package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// New creates the service logger. Production logs are JSON on stdout,
// anything else gets the colored console encoder at debug level.
func New(env string) (*zap.Logger, error) {
	var config zap.Config

	if env == EnvProduction {
		config = zap.NewProductionConfig()
		config.Encoding = "json"
		config.EncoderConfig = encoderConfig(env)
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	// Always log to stdout for container compatibility
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}

	return logger.With(zap.String("service", "customer-portal")), nil
}

// NewWithWriter builds a logger with the production or development encoder
// writing to ws instead of stdout.
func NewWithWriter(env string, ws zapcore.WriteSyncer) *zap.Logger {
	var encoder zapcore.Encoder
	level := zapcore.DebugLevel

	if env == EnvProduction {
		encoder = zapcore.NewJSONEncoder(encoderConfig(env))
		level = zapcore.InfoLevel
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig(env))
	}

	core := zapcore.NewCore(encoder, ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.String("service", "customer-portal"))
}

// NewWithDefaults creates a logger from SERVER_ENV, falling back to zap's
// production logger if the configured one cannot be built.
func NewWithDefaults() *zap.Logger {
	env := os.Getenv("SERVER_ENV")
	if env == "" {
		env = EnvDevelopment
	}

	logger, err := New(env)
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	return logger
}

func encoderConfig(env string) zapcore.EncoderConfig {
	if env == EnvProduction {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.MessageKey = "message"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return cfg
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}
