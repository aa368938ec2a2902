package service_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"workerguard-console/internal/api"
	"workerguard-console/internal/domain"
	"workerguard-console/internal/service"
	"workerguard-console/internal/store"

	"go.uber.org/zap"
)

// call is one recorded backend request.
type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
	Header http.Header
}

// backend is a scriptable fake WorkerGuard backend: handlers are registered
// per "METHOD /path" and every request is recorded for assertions.
type backend struct {
	mu     sync.Mutex
	calls  []call
	routes map[string]http.HandlerFunc
	server *httptest.Server
}

func newBackend(t *testing.T) *backend {
	b := &backend{routes: map[string]http.HandlerFunc{}}
	b.server = httptest.NewServer(b)
	t.Cleanup(b.server.Close)
	return b
}

func (b *backend) route(pattern string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[pattern] = h
}

// routeJSON registers a handler that always answers 200 with the given value.
func (b *backend) routeJSON(pattern string, v any) {
	b.route(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, v)
	})
}

// routeReject registers a handler answering a non-2xx with a detail body.
func (b *backend) routeReject(pattern string, status int, detail string) {
	b.route(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, map[string]string{"detail": detail})
	})
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	key := r.Method + " " + r.URL.Path

	b.mu.Lock()
	b.calls = append(b.calls, call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   body,
		Header: r.Header.Clone(),
	})
	h, ok := b.routes[key]
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "no route for " + key})
		return
	}
	h(w, r)
}

func (b *backend) count(pattern string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c.Method+" "+c.Path == pattern {
			n++
		}
	}
	return n
}

func (b *backend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *backend) last(pattern string) (call, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.calls) - 1; i >= 0; i-- {
		if b.calls[i].Method+" "+b.calls[i].Path == pattern {
			return b.calls[i], true
		}
	}
	return call{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// env bundles a console wired against the fake backend.
type env struct {
	backend *backend
	console *service.Console
	slots   *store.Slots
	session *service.SessionManager
}

func newEnv(t *testing.T) *env {
	b := newBackend(t)
	logger := zap.NewNop()
	session := service.NewSessionManager(logger)
	client := api.NewClient(b.server.URL, 5*time.Second, 0, session, logger)
	slots := store.NewSlots()
	console := service.NewConsole(client, session, slots, logger)
	return &env{backend: b, console: console, slots: slots, session: session}
}

func (e *env) loginAs(role domain.Role) {
	e.session.Establish(&domain.Session{
		Role:        role,
		Company:     "Hansol Logistics",
		Username:    "operator",
		AccessToken: "test-token",
	})
}
