// Package testkit holds the helpers the HTTP tests share: request
// building, response envelope decoding, and JSON comparison on top of
// testify.
package testkit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request builds a request with body JSON-encoded, when non-nil.
func Request(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// WithBearer attaches a bearer token to the request.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// Do runs the request through the handler and captures the response.
func Do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// Envelope mirrors the JSON envelope every endpoint writes.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

// DecodeEnvelope parses the recorded response body.
func DecodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env),
		"response is not a valid envelope\nbody: %s", rec.Body.String())
	return env
}

// DataMap decodes the envelope data as a generic JSON object.
func (e Envelope) DataMap(t *testing.T) map[string]interface{} {
	t.Helper()

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(e.Data, &m),
		"envelope data is not a JSON object\ndata: %s", string(e.Data))
	return m
}
