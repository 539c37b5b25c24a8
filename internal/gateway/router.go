package gateway

import (
	"net/http"
	"strings"
)

// Router wraps http.ServeMux, records the registered patterns and lets
// related routes share a path prefix.
type Router struct {
	mux      *http.ServeMux
	prefix   string
	patterns *[]string
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{
		mux:      http.NewServeMux(),
		patterns: new([]string),
	}
}

// Mux returns the underlying http.ServeMux
func (r *Router) Mux() *http.ServeMux {
	return r.mux
}

// Group returns a router that registers on the same mux under prefix.
func (r *Router) Group(prefix string) *Router {
	return &Router{
		mux:      r.mux,
		prefix:   r.prefix + strings.TrimSuffix(prefix, "/"),
		patterns: r.patterns,
	}
}

// Patterns lists every pattern registered so far, in registration order.
func (r *Router) Patterns() []string {
	return append([]string(nil), (*r.patterns)...)
}

// Handle registers a handler for the given pattern. A pattern may start with
// an HTTP method ("GET /path"); the group prefix goes in front of the path.
func (r *Router) Handle(pattern string, handler http.Handler) {
	pattern = r.withPrefix(pattern)
	r.mux.Handle(pattern, handler)
	*r.patterns = append(*r.patterns, pattern)
}

// HandleFunc registers a handler function for the given pattern
func (r *Router) HandleFunc(pattern string, handler http.HandlerFunc) {
	r.Handle(pattern, handler)
}

func (r *Router) withPrefix(pattern string) string {
	if r.prefix == "" {
		return pattern
	}
	method, path, ok := strings.Cut(pattern, " ")
	if !ok {
		return r.prefix + pattern
	}
	if path == "" || path == "/" {
		return method + " " + r.prefix
	}
	return method + " " + r.prefix + path
}
