package logging

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	assert.Equal(t, time.RFC3339, parseTimeFormat("rfc3339"))
	assert.Equal(t, "", parseTimeFormat("unix"))
	assert.Equal(t, time.Kitchen, parseTimeFormat("kitchen"))
	assert.Equal(t, time.Kitchen, parseTimeFormat("unknown"))
}

func TestNewLoggerFromConfig(t *testing.T) {
	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("explicit level respected", func(t *testing.T) {
		logger := NewLoggerFromConfig(&Config{Level: "error", Format: "json", Output: "discard"})
		assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
	})
}

func TestTestLoggerCapture(t *testing.T) {
	tl := NewTestLogger(t)
	tl.Info().Str("endpoint", "beta").Msg("probing")

	assert.True(t, tl.Contains("probing"))
	assert.True(t, tl.Contains("beta"))
	assert.Len(t, tl.Lines(), 1)

	tl.Clear()
	assert.Empty(t, tl.Lines())
}

func TestContextLogger(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(t.Context(), tl.Logger)
	ctx = WithEndpoint(ctx, "regular")

	Ctx(ctx).Info().Msg("from context")

	assert.True(t, tl.Contains("from context"))
	assert.True(t, tl.Contains("regular"))
}

func TestFromContextFallsBack(t *testing.T) {
	assert.Equal(t, Default(), FromContext(t.Context()))
	assert.Equal(t, Default(), FromContext(nil)) //nolint:staticcheck // nil context is the case under test
}
