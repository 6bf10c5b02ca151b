package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelprobe/internal/credential"
	"github.com/agentstation/modelprobe/internal/probe"
	"github.com/agentstation/modelprobe/internal/transport"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, credential.DefaultEnvVar, config.CredentialEnv)
	assert.Equal(t, probe.DefaultBaseURL, config.BaseURL)
	assert.Equal(t, probe.DefaultBetaURL, config.BetaURL)
	assert.Equal(t, "all", config.Surface)
	assert.Equal(t, transport.DefaultHTTPTimeout, config.Timeout)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "text", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "json", "debug")

	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)

	// Empty flag values must not clobber existing settings
	config.UpdateFromFlags(false, false, false, "", "")
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestConfigEndpoints(t *testing.T) {
	config := &Config{
		BaseURL: "https://api.example.com/v1",
		BetaURL: "https://api.example.com/beta",
	}

	tests := []struct {
		surface  string
		expected []string // endpoint names in probe order
	}{
		{surface: "all", expected: []string{"beta", "regular"}},
		{surface: "", expected: []string{"beta", "regular"}},
		{surface: "beta", expected: []string{"beta"}},
		{surface: "regular", expected: []string{"regular"}},
		{surface: "v1", expected: []string{"regular"}},
		{surface: "Beta", expected: []string{"beta"}},
	}

	for _, tt := range tests {
		t.Run("surface "+tt.surface, func(t *testing.T) {
			config.Surface = tt.surface
			endpoints := config.Endpoints()

			names := make([]string, 0, len(endpoints))
			for _, e := range endpoints {
				names = append(names, e.Name())
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestConfigEndpointsURLs(t *testing.T) {
	config := &Config{
		BaseURL: "https://api.example.com/v1",
		BetaURL: "https://api.example.com/beta",
		Surface: "all",
	}

	endpoints := config.Endpoints()
	require.Len(t, endpoints, 2)
	assert.Equal(t, "https://api.example.com/beta/models", endpoints[0].ModelsURL())
	assert.Equal(t, "https://api.example.com/v1/models", endpoints[1].ModelsURL())
}

func TestDefaultTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, transport.DefaultHTTPTimeout)
}
