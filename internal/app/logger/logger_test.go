package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"info", "json", zapcore.InfoLevel, zapcore.DebugLevel},
		{"warn", "json", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", "console", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"bogus", "json", zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		l, err := New(tt.level, tt.format)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(tt.enabled), tt.level)
		assert.False(t, l.Core().Enabled(tt.disabled), tt.level)
	}
}
