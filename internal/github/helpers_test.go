package github

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"golang.org/x/time/rate"
)

// recordingMux is an http handler that records every request path so
// tests can assert which endpoints were (not) hit.
type recordingMux struct {
	mu    sync.Mutex
	paths []string
	mux   *http.ServeMux
}

func newRecordingMux() *recordingMux {
	return &recordingMux{mux: http.NewServeMux()}
}

func (m *recordingMux) handle(pattern string, handler http.HandlerFunc) {
	m.mux.HandleFunc(pattern, handler)
}

func (m *recordingMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.paths = append(m.paths, r.URL.Path)
	m.mu.Unlock()
	m.mux.ServeHTTP(w, r)
}

func (m *recordingMux) sawPath(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.paths {
		if p == path {
			return true
		}
	}
	return false
}

// newTestService spins up a stub API server and an engine pointed at
// it. The proactive throttle is opened up so tests run at full speed.
func newTestService(t *testing.T, handler http.Handler, opts Options) (*Service, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClientWithHTTPClient(srv.Client())
	client.rateLimiter.bucket = rate.NewLimiter(rate.Inf, 1)

	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	client.gh.BaseURL = base

	return NewServiceWithClient(client, opts), srv
}

func respondJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

// userJSON is a minimal authenticated-user payload.
const userJSON = `{"login":"octocat","id":583231,"type":"User"}`

// serveUser registers a /user endpoint advertising the given scopes.
func serveUser(m *recordingMux, scopes string) {
	m.handle("/user", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-OAuth-Scopes", scopes)
		respondJSON(w, userJSON)
	})
}

// serveRateLimit registers a healthy /rate_limit endpoint.
func serveRateLimit(m *recordingMux, remaining int) {
	m.handle("/rate_limit", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, fmt.Sprintf(
			`{"resources":{"core":{"limit":5000,"remaining":%d,"reset":1767225600}}}`, remaining))
	})
}
