package logger_test

import (
	"testing"

	"github.com/SeaCloudHub/eventdispatcher/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewAppLogger(t *testing.T) {
	t.Run("it should create an info logger by default", func(t *testing.T) {
		applog, err := logger.NewAppLogger()

		require.NoError(t, err)
		assert.True(t, applog.Desugar().Core().Enabled(zapcore.InfoLevel))
		assert.False(t, applog.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("it should reject an unknown level", func(t *testing.T) {
		applog, err := logger.NewAppLogger(logger.WithLevel("nope"))

		assert.Error(t, err)
		assert.Nil(t, applog)
	})
}

func TestWithLevel(t *testing.T) {
	tests := []struct {
		level  string
		lowest zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			applog, err := logger.NewAppLogger(logger.WithLevel(tt.level))
			require.NoError(t, err)

			core := applog.Desugar().Core()
			assert.True(t, core.Enabled(tt.lowest))
			assert.False(t, core.Enabled(tt.lowest-1))
		})
	}
}
