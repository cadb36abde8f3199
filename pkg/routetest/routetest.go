// Package routetest provides a fake Confluence server for tests: an ordered
// route table of (method, path pattern) -> handler over httptest.Server.
// Routes are matched first to last; unmatched requests return 404 with a
// Confluence-shaped error body.
package routetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync/atomic"
)

// Route binds an HTTP method and a path regexp to a handler. The regexp is
// matched against the request path only (not the query string); capture
// groups are passed to the handler.
type Route struct {
	Method  string
	Pattern string
	Handler func(w http.ResponseWriter, r *http.Request, matches []string)
}

type compiledRoute struct {
	method  string
	pattern *regexp.Regexp
	handler func(http.ResponseWriter, *http.Request, []string)
}

// Server wraps an httptest.Server dispatching through the route table and
// counting every request it receives.
type Server struct {
	*httptest.Server

	routes   []compiledRoute
	requests atomic.Int64
}

// NewServer compiles routes (anchored on both ends) and starts the server.
// Panics on an invalid pattern; route tables are test fixtures.
func NewServer(routes ...Route) *Server {
	s := &Server{}
	for _, r := range routes {
		s.routes = append(s.routes, compiledRoute{
			method:  r.Method,
			pattern: regexp.MustCompile("^" + r.Pattern + "$"),
			handler: r.Handler,
		})
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.dispatch))
	return s
}

// Requests returns the total number of requests served so far.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)

	for _, route := range s.routes {
		if route.method != "" && route.method != r.Method {
			continue
		}
		if matches := route.pattern.FindStringSubmatch(r.URL.Path); matches != nil {
			route.handler(w, r, matches)
			return
		}
	}

	WriteError(w, http.StatusNotFound, "no content found with the given path")
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a Confluence-shaped error body.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]any{
		"statusCode": status,
		"message":    message,
	})
}
