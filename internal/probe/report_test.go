package probe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelprobe/internal/credential"
	"github.com/agentstation/modelprobe/pkg/errors"
)

func TestReportSuccess(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	result := Success([]ModelRecord{
		{ID: "chat-large", OwnedBy: "example"},
		{ID: "chat-small", OwnedBy: "example"},
	})
	reporter.Report(Endpoint{}, result)

	expected := "Found 2 models:\n" +
		"  - chat-large (owned by example)\n" +
		"  - chat-small (owned by example)\n"
	assert.Equal(t, expected, buf.String())
}

func TestReportEmptySuccess(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	reporter.Report(Endpoint{Role: "beta"}, Success(nil))

	assert.Equal(t, "Found 0 models:\n", buf.String())
}

func TestReportFailure(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		expected string
	}{
		{
			name:     "default surface",
			endpoint: Endpoint{},
			expected: "API Error: connection refused\n",
		},
		{
			name:     "beta surface",
			endpoint: Endpoint{Role: "beta"},
			expected: "Beta API Error: connection refused\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf)

			reporter.Report(tt.endpoint, Failure(errors.New("connection refused")))

			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestReportHeaderLines(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	reporter.Testing(Endpoint{Role: "beta"})
	reporter.Blank()
	reporter.Testing(Endpoint{})

	assert.Equal(t, "Testing beta models endpoint...\n\nTesting models endpoint...\n", buf.String())
}

func TestReportCredentialLines(t *testing.T) {
	t.Setenv("MODELPROBE_TEST_KEY", "abc123")
	cred, err := credential.FromEnv("MODELPROBE_TEST_KEY")
	require.NoError(t, err)

	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	reporter.KeyFound(cred)
	assert.Equal(t, "API Key found (length: 6)\n", buf.String())

	buf.Reset()
	reporter.MissingKey("DEEPSEEK_API_KEY")
	assert.Equal(t, "DEEPSEEK_API_KEY not set!\n", buf.String())

	buf.Reset()
	reporter.MissingKey("")
	assert.Equal(t, credential.DefaultEnvVar+" not set!\n", buf.String())
}
