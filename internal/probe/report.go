package probe

import (
	"fmt"
	"io"
	"os"

	"github.com/agentstation/modelprobe/internal/credential"
)

// Reporter writes human-readable probe output. It is presentation only: it
// never affects control flow and never returns an error to the caller.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out, or to stdout when out is
// nil.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stdout
	}
	return &Reporter{out: out}
}

// MissingKey reports a missing credential.
func (r *Reporter) MissingKey(envVar string) {
	if envVar == "" {
		envVar = credential.DefaultEnvVar
	}
	fmt.Fprintf(r.out, "%s not set!\n", envVar)
}

// KeyFound reports that a credential was loaded, showing only its length.
func (r *Reporter) KeyFound(cred credential.Credential) {
	fmt.Fprintf(r.out, "API Key found (length: %d)\n", cred.Len())
}

// Testing prints the header line for an endpoint probe.
func (r *Reporter) Testing(endpoint Endpoint) {
	fmt.Fprintln(r.out, endpoint.Header())
}

// Blank prints a separator line between endpoint sections.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Report presents a probe result. On success it emits the count line
// followed by one line per record, in provider order. On failure it emits a
// single error line with the endpoint's label.
func (r *Reporter) Report(endpoint Endpoint, result Result) {
	if !result.OK() {
		fmt.Fprintf(r.out, "%s: %s\n", endpoint.ErrorLabel(), result.ErrorMessage())
		return
	}

	records := result.Records()
	fmt.Fprintf(r.out, "Found %d models:\n", len(records))
	for _, record := range records {
		fmt.Fprintf(r.out, "  - %s (owned by %s)\n", record.ID, record.OwnedBy)
	}
}
