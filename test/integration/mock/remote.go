// Package mock provides test doubles for the integration suite.
package mock

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// emptySnapshot is the default remote snapshot body.
const emptySnapshot = `{
	"transactions": [],
	"categories": [],
	"goals": [],
	"recurring_transactions": [],
	"assets": [],
	"profile": null
}`

// RemoteBackend is an in-process stand-in for the remote persistence backend.
// It serves the snapshot endpoint and accepts per-kind upserts and deletes,
// recording every request for assertions.
type RemoteBackend struct {
	mu          sync.Mutex
	server      *httptest.Server
	unavailable bool
	snapshot    string
	requests    map[string]int
}

// NewRemoteBackend creates and starts the mock backend.
func NewRemoteBackend() *RemoteBackend {
	b := &RemoteBackend{
		snapshot: emptySnapshot,
		requests: map[string]int{},
	}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	return b
}

// URL returns the backend's base URL.
func (b *RemoteBackend) URL() string {
	return b.server.URL
}

// Close shuts the backend down.
func (b *RemoteBackend) Close() {
	b.server.Close()
}

// SetUnavailable makes every endpoint fail with 503 until reset.
func (b *RemoteBackend) SetUnavailable(unavailable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.unavailable = unavailable
}

// SetSnapshot sets the body returned by the snapshot endpoint.
func (b *RemoteBackend) SetSnapshot(body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshot = body
}

// Requests returns how many requests were received for method and path.
// Requests served while the backend was unavailable are not counted.
func (b *RemoteBackend) Requests(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[method+" "+path]
}

func (b *RemoteBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unavailable {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	b.requests[r.Method+" "+r.URL.Path]++

	switch r.Method {
	case http.MethodGet:
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(b.snapshot))
	case http.MethodPut:
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
