// Package solarsystest provides an in-process fake of the bodies API for tests.
//
// The fake serves the same two routes as the real API under /rest/bodies/
// and returns whatever raw JSON the test registers, so decoding edge cases
// can be exercised end to end:
//
//	srv := solarsystest.NewServer(t)
//	srv.SetBody("mars", `{"name":"Mars","id":"mars"}`)
//	client := solarsys.NewClient(solarsys.WithBaseURL(srv.URL))
package solarsystest

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// BodiesPath is the collection path served by the fake.
const BodiesPath = "/rest/bodies/"

// Request is a recorded incoming request.
type Request struct {
	Path   string
	Header http.Header
}

// Server is a fake bodies API backed by httptest.Server.
type Server struct {
	// URL is the collection endpoint, suitable for solarsys.WithBaseURL.
	URL string

	srv *httptest.Server

	mu       sync.Mutex
	list     []byte
	bodies   map[string][]byte
	status   int
	requests []Request
}

// NewServer starts a fake API that is closed when the test ends.
// Until SetList is called, the list endpoint answers {"bodies":[]}.
func NewServer(tb testing.TB) *Server {
	tb.Helper()
	s := &Server{
		list:   []byte(`{"bodies":[]}`),
		bodies: make(map[string][]byte),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Route("/rest/bodies", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleBody)
	})

	s.srv = httptest.NewServer(r)
	s.URL = s.srv.URL + BodiesPath
	tb.Cleanup(s.srv.Close)
	return s
}

// SetList sets the raw JSON returned by the list endpoint.
func (s *Server) SetList(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = []byte(raw)
}

// SetBody sets the raw JSON returned for id by the detail endpoint.
// Unknown ids answer 404.
func (s *Server) SetBody(id, raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[id] = []byte(raw)
}

// SetStatus forces every route to answer with code and an empty JSON object.
// Zero restores normal routing.
func (s *Server) SetStatus(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = code
}

// Requests returns the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Close shuts the server down. Later requests fail with connection refused.
func (s *Server) Close() { s.srv.Close() }

// ClosedURL returns a collection URL on a server that has already been shut
// down, so connecting to it fails.
func ClosedURL(tb testing.TB) string {
	tb.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL + BodiesPath
	srv.Close()
	return u
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{Path: r.URL.Path, Header: r.Header.Clone()})
		status := s.status
		s.mu.Unlock()

		if status != 0 {
			writeJSON(w, status, []byte(`{}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	data := s.list
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleBody(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	data, ok := s.bodies[id]
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, []byte(`{"message":"not found"}`))
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
