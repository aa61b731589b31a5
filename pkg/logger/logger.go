package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Options func(cfg *zap.Config) error

// WithLevel sets the minimum level written by the logger. Levels below info
// are allowed.
func WithLevel(level string) Options {
	return func(cfg *zap.Config) error {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}

		cfg.Level = zap.NewAtomicLevelAt(lvl)

		return nil
	}
}

func NewAppLogger(options ...Options) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	for _, fn := range options {
		if err := fn(&cfg); err != nil {
			return nil, err
		}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

func Sync(logger *zap.SugaredLogger) {
	// stdout/stderr sync errors are not actionable
	_ = logger.Sync()
}
