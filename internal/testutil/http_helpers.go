package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams creates an HTTP request carrying chi URL
// parameters, for calling handlers directly without a router.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/chart/data/110011",
//	    map[string]string{"fundID": "110011"},
//	)
func NewRequestWithURLParams(method, path string, params map[string]string) *http.Request {
	return NewRequestWithBody(method, path, params, nil)
}

// NewRequestWithBody creates an HTTP request with chi URL parameters and a
// JSON-encoded body.
func NewRequestWithBody(method, path string, params map[string]string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)

	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for key, value := range params {
			rctx.URLParams.Add(key, value)
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	return req
}

// JSONBody encodes v as JSON for use as a request body.
func JSONBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal request body: %v", err)
	}
	return bytes.NewReader(data)
}
