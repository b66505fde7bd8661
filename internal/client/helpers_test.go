package client

import (
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/michaelgwelch/metasys-go/pkg/metasys"
	"github.com/stretchr/testify/require"
)

// apiRecorder fakes the REST API under /api/v1 and records every request.
// Responses are looked up by request URI first (path plus query, with the
// /api/v1 prefix stripped) and then by bare path; anything else answers 404.
type apiRecorder struct {
	mu       sync.Mutex
	requests []*url.URL
	headers  []nethttp.Header
	pages    map[string]string
}

func (a *apiRecorder) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	requestURL := *r.URL

	a.mu.Lock()
	a.requests = append(a.requests, &requestURL)
	a.headers = append(a.headers, r.Header.Clone())
	a.mu.Unlock()

	body, ok := a.pages[strings.TrimPrefix(r.URL.RequestURI(), "/api/v1")]
	if !ok {
		body, ok = a.pages[strings.TrimPrefix(r.URL.Path, "/api/v1")]
	}

	if !ok {
		w.WriteHeader(nethttp.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

// newTestClient starts a fake API server and returns an authenticated client
// bound to it.
func newTestClient(t *testing.T, pages map[string]string) (*apiRecorder, *Client) {
	t.Helper()

	recorder := &apiRecorder{pages: pages}
	server := httptest.NewServer(recorder)
	t.Cleanup(server.Close)

	c, err := New(&metasys.Config{Host: server.URL, AccessToken: "test-token"})
	require.NoError(t, err)

	return recorder, c
}
