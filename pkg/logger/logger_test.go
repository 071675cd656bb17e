package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level LogLevel
		want  zapcore.Level
	}{
		{"development defaults to debug", "development", "", zapcore.DebugLevel},
		{"production defaults to info", "production", "", zapcore.InfoLevel},
		{"explicit warn", "production", WarnLevel, zapcore.WarnLevel},
		{"unknown falls back to info", "development", "loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.env, tt.level, "")
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.want-1))
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Set(zap.New(core))
	defer Set(nil)

	Info("started", zap.String("address", "0.0.0.0:8080"))
	Debug("hidden")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "started", entry.Message)
	assert.Equal(t, "0.0.0.0:8080", entry.ContextMap()["address"])
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
	l := zap.NewExample()
	assert.Same(t, l, OrNop(l))
}
