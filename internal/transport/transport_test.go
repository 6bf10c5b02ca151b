package transport

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/modelprobe/pkg/errors"
)

func TestNoAuth(t *testing.T) {
	auth := &NoAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestBearerAuth(t *testing.T) {
	auth := &BearerAuth{}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	assert.Equal(t, "Bearer test-api-key", req.Header.Get("Authorization"))
}

func TestHeaderAuth(t *testing.T) {
	auth := &HeaderAuth{Header: "x-api-key"}
	req := &http.Request{Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	assert.Equal(t, "test-api-key", req.Header.Get("x-api-key"))
}

func TestQueryAuth(t *testing.T) {
	auth := &QueryAuth{Param: "key"}
	u, err := url.Parse("https://api.example.com/v1/models")
	require.NoError(t, err)
	req := &http.Request{URL: u, Header: make(http.Header)}

	auth.Apply(req, "test-api-key")

	assert.Equal(t, "key=test-api-key", req.URL.RawQuery)
}

func TestQueryAuthNilURL(t *testing.T) {
	auth := &QueryAuth{Param: "key"}
	req := &http.Request{Header: make(http.Header)}

	// Must not panic
	auth.Apply(req, "test-api-key")
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client := New(&BearerAuth{})
	resp, err := client.Get(t.Context(), server.URL+"/v1/models", "secret")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClientGetSkipsAuthWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(&BearerAuth{})
	resp, err := client.Get(t.Context(), server.URL, "")
	require.NoError(t, err)
	resp.Body.Close()
}

func TestNewWithTimeoutFallback(t *testing.T) {
	client := NewWithTimeout(nil, 0)
	assert.Equal(t, DefaultHTTPTimeout, client.http.Timeout)

	client = NewWithTimeout(&BearerAuth{}, 5*time.Second)
	assert.Equal(t, 5*time.Second, client.http.Timeout)
}

func TestDecodeResponse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"object":"list"}`))
		}))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)

		var result struct {
			Object string `json:"object"`
		}
		require.NoError(t, DecodeResponse(resp, &result))
		assert.Equal(t, "list", result.Object)
	})

	t.Run("non-200 becomes APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid api key"}`))
		}))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)

		var result map[string]any
		err = DecodeResponse(resp, &result)
		require.Error(t, err)

		var apiErr *errors.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		assert.Contains(t, apiErr.Message, "invalid api key")
		assert.ErrorIs(t, err, errors.ErrAPIKeyInvalid)
	})

	t.Run("malformed body becomes ParseError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		resp, err := http.Get(server.URL)
		require.NoError(t, err)

		var result map[string]any
		err = DecodeResponse(resp, &result)
		require.Error(t, err)

		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})
}
