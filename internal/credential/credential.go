// Package credential loads and checks the provider API key.
// The credential is read from the environment exactly once at startup and
// is immutable for the process lifetime. Checks here are local only; no
// network calls are made.
package credential

import (
	"fmt"
	"os"
	"strings"

	"github.com/agentstation/modelprobe/pkg/errors"
)

// DefaultEnvVar is the environment variable holding the API key.
const DefaultEnvVar = "DEEPSEEK_API_KEY"

// Credential is an immutable API key value. The raw value is never logged;
// use Redacted for display.
type Credential struct {
	value  string
	envVar string
}

// FromEnv reads the credential from the named environment variable.
// An unset or empty variable is a fatal configuration error: no endpoint
// can be probed without a credential.
func FromEnv(name string) (Credential, error) {
	if name == "" {
		name = DefaultEnvVar
	}

	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return Credential{}, errors.NewConfigError(
			"credential",
			fmt.Sprintf("%s not set", name),
			errors.ErrAPIKeyRequired,
		)
	}

	return Credential{value: value, envVar: name}, nil
}

// Value returns the raw API key for request authentication.
func (c Credential) Value() string {
	return c.value
}

// EnvVar returns the environment variable the credential was read from.
func (c Credential) EnvVar() string {
	return c.envVar
}

// Len returns the length of the API key in bytes.
func (c Credential) Len() int {
	return len(c.value)
}

// IsZero reports whether the credential is unset.
func (c Credential) IsZero() bool {
	return c.value == ""
}

// Redacted returns a display-safe form of the key, keeping only a short
// prefix and the last two characters.
func (c Credential) Redacted() string {
	if c.value == "" {
		return ""
	}
	if len(c.value) <= 6 {
		return strings.Repeat("*", len(c.value))
	}
	return c.value[:4] + "..." + c.value[len(c.value)-2:]
}

// State describes the local configuration state of a credential.
type State string

const (
	// StateConfigured means the environment variable is set and non-empty.
	StateConfigured State = "configured"
	// StateMissing means the environment variable is unset or empty.
	StateMissing State = "missing"
)

// Status is the result of a local credential check.
type Status struct {
	State   State
	EnvVar  string
	Summary string
}

// Check performs a local check of the named environment variable without
// reading the value into a Credential.
func Check(name string) Status {
	if name == "" {
		name = DefaultEnvVar
	}

	if strings.TrimSpace(os.Getenv(name)) == "" {
		return Status{
			State:   StateMissing,
			EnvVar:  name,
			Summary: fmt.Sprintf("Set %s environment variable", name),
		}
	}

	return Status{
		State:   StateConfigured,
		EnvVar:  name,
		Summary: fmt.Sprintf("API key configured (%s)", name),
	}
}
