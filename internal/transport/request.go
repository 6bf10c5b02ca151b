package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/modelprobe/pkg/errors"
	"github.com/agentstation/modelprobe/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure.
// Non-200 status codes become an APIError carrying the response body;
// malformed bodies become a ParseError. The response body is always closed.
func DecodeResponse(resp *http.Response, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Default().Warn().Err(err).Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		endpoint := ""
		if resp.Request != nil && resp.Request.URL != nil {
			endpoint = resp.Request.URL.Host
		}
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
