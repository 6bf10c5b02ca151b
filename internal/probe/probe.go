// Package probe implements the model inventory probe: given a credential
// and an endpoint, it queries the provider's list-models operation once and
// reports the resulting model identifiers and owners, or the failure.
//
// A probe is a single stateless request/response operation. There are no
// retries, no caching, and no state shared between endpoints.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/modelprobe/internal/credential"
	"github.com/agentstation/modelprobe/internal/transport"
	"github.com/agentstation/modelprobe/pkg/logging"
)

// modelsResponse is the OpenAI-compatible list-models response body.
type modelsResponse struct {
	Object string      `json:"object"`
	Data   []modelData `json:"data"`
}

// modelData is a single model in the list-models response.
type modelData struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelRecord is one reported model: its identifier and owning
// organization, plus the creation timestamp the provider sends alongside.
type ModelRecord struct {
	ID      string   `json:"id" yaml:"id"`
	OwnedBy string   `json:"owned_by" yaml:"owned_by"`
	Created utc.Time `json:"created" yaml:"created"`
}

// Result is the outcome of probing one endpoint: success with an ordered
// record sequence, or failure with a message. It is exactly one of the two;
// construct only via Success or Failure.
type Result struct {
	ok      bool
	records []ModelRecord
	failure string
}

// Success returns a successful Result carrying the records in provider
// order.
func Success(records []ModelRecord) Result {
	if records == nil {
		records = []ModelRecord{}
	}
	return Result{ok: true, records: records}
}

// Failure returns a failed Result with a message derived from err.
func Failure(err error) Result {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Result{failure: msg}
}

// OK reports whether the probe succeeded.
func (r Result) OK() bool {
	return r.ok
}

// Records returns the model records of a successful probe, in the order
// the provider enumerated them. Empty for failures.
func (r Result) Records() []ModelRecord {
	return r.records
}

// ErrorMessage returns the failure message. Empty for successes.
func (r Result) ErrorMessage() string {
	return r.failure
}

// Prober queries the list-models operation of configured endpoints with a
// fixed credential. It is safe for sequential reuse across endpoints.
type Prober struct {
	transport *transport.Client
	cred      credential.Credential
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout bounds each probe request with the given timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.transport = transport.NewWithTimeout(&transport.BearerAuth{}, timeout)
	}
}

// WithTransport replaces the HTTP transport, mainly for tests.
func WithTransport(client *transport.Client) Option {
	return func(p *Prober) {
		p.transport = client
	}
}

// New creates a Prober authenticating with cred.
func New(cred credential.Credential, opts ...Option) *Prober {
	p := &Prober{
		transport: transport.New(&transport.BearerAuth{}),
		cred:      cred,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Probe invokes the endpoint's list-models operation exactly once and maps
// every outcome into a Result. No error or panic escapes this boundary; the
// caller always receives a Result.
func (p *Prober) Probe(ctx context.Context, endpoint Endpoint) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Failure(fmt.Errorf("panic during probe: %v", r))
		}
	}()

	log := logging.Ctx(ctx)
	log.Debug().
		Str("endpoint", endpoint.Name()).
		Str("url", endpoint.ModelsURL()).
		Msg("probing models endpoint")

	start := time.Now()
	resp, err := p.transport.Get(ctx, endpoint.ModelsURL(), p.cred.Value())
	if err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint.Name()).Msg("request failed")
		return Failure(err)
	}

	var body modelsResponse
	if err := transport.DecodeResponse(resp, &body); err != nil {
		log.Debug().Err(err).Str("endpoint", endpoint.Name()).Msg("decode failed")
		return Failure(err)
	}

	// Preserve provider order; no deduplication, no filtering.
	records := make([]ModelRecord, 0, len(body.Data))
	for _, m := range body.Data {
		records = append(records, convertModel(m))
	}

	log.Debug().
		Str("endpoint", endpoint.Name()).
		Int("models", len(records)).
		Dur("elapsed", time.Since(start)).
		Msg("probe succeeded")

	return Success(records)
}

// convertModel converts a wire model to a ModelRecord.
func convertModel(m modelData) ModelRecord {
	record := ModelRecord{
		ID:      m.ID,
		OwnedBy: m.OwnedBy,
	}
	if m.Created > 0 {
		record.Created = utc.Time{Time: time.Unix(m.Created, 0).UTC()}
	}
	return record
}
