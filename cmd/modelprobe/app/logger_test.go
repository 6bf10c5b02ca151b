package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default is info",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "explicit log level wins",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "invalid explicit level falls back to info",
			config:   &Config{LogLevel: "loud"},
			expected: "info",
		},
		{
			name:     "verbose is debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet is warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "quiet wins over verbose",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "info", validateLogLevel("fatal"))
	assert.Equal(t, "info", validateLogLevel(""))
}

func TestNewLogger(t *testing.T) {
	config := &Config{LogLevel: "debug", LogFormat: "json", LogOutput: "discard"}
	logger := NewLogger(config)
	assert.Equal(t, "debug", logger.GetLevel().String())
}
