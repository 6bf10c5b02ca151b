package probe

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default base URLs for the two DeepSeek API surfaces.
const (
	// DefaultBaseURL is the stable v1 API surface.
	DefaultBaseURL = "https://api.deepseek.com/v1"
	// DefaultBetaURL is the beta API surface.
	DefaultBetaURL = "https://api.deepseek.com/beta"
)

// titleCaser converts role labels for display ("beta" -> "Beta").
var titleCaser = cases.Title(language.English)

// Endpoint identifies one API surface to probe. Role is a short label for
// the surface ("beta"); the default surface carries an empty role.
// Endpoints share no state and are probed independently.
type Endpoint struct {
	Role    string `json:"role" yaml:"role"`
	BaseURL string `json:"base_url" yaml:"base_url"`
}

// DefaultEndpoints returns the surfaces probed by default: the beta surface
// first, then the stable surface, matching the order the diagnostics have
// always run in.
func DefaultEndpoints() []Endpoint {
	return []Endpoint{
		{Role: "beta", BaseURL: DefaultBetaURL},
		{Role: "", BaseURL: DefaultBaseURL},
	}
}

// Name returns a short display name for the endpoint.
func (e Endpoint) Name() string {
	if e.Role == "" {
		return "regular"
	}
	return e.Role
}

// ModelsURL returns the URL of the list-models operation for this surface.
func (e Endpoint) ModelsURL() string {
	return strings.TrimSuffix(e.BaseURL, "/") + "/models"
}

// Header returns the line printed before probing this endpoint.
func (e Endpoint) Header() string {
	if e.Role == "" {
		return "Testing models endpoint..."
	}
	return "Testing " + e.Role + " models endpoint..."
}

// ErrorLabel returns the prefix for a failure line, e.g. "Beta API Error".
func (e Endpoint) ErrorLabel() string {
	if e.Role == "" {
		return "API Error"
	}
	return titleCaser.String(e.Role) + " API Error"
}
