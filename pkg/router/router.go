package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// route is one registered pattern with its per-method handlers
type route struct {
	pattern  string
	segments []string
	handlers map[string]HandlerFunc // method -> handler
}

// Router is a small mux supporting "*" path segments and colored
// request logging. Patterns are matched in registration order, exact
// patterns before wildcard ones.
type Router struct {
	exact    map[string]*route // pattern -> route (no wildcards)
	wildcard []*route          // in registration order
}

func New() *Router {
	return &Router{exact: make(map[string]*route)}
}

func (r *Router) register(method, pattern string, handler HandlerFunc) {
	var rt *route
	if strings.Contains(pattern, "*") {
		for _, w := range r.wildcard {
			if w.pattern == pattern {
				rt = w
				break
			}
		}
		if rt == nil {
			rt = &route{
				pattern:  pattern,
				segments: splitPath(pattern),
				handlers: make(map[string]HandlerFunc),
			}
			r.wildcard = append(r.wildcard, rt)
		}
	} else {
		rt = r.exact[pattern]
		if rt == nil {
			rt = &route{pattern: pattern, handlers: make(map[string]HandlerFunc)}
			r.exact[pattern] = rt
		}
	}
	rt.handlers[method] = handler
}

func (r *Router) GET(pattern string, handler HandlerFunc)  { r.register(http.MethodGet, pattern, handler) }
func (r *Router) POST(pattern string, handler HandlerFunc) { r.register(http.MethodPost, pattern, handler) }
func (r *Router) PUT(pattern string, handler HandlerFunc)  { r.register(http.MethodPut, pattern, handler) }
func (r *Router) PATCH(pattern string, handler HandlerFunc) {
	r.register(http.MethodPatch, pattern, handler)
}
func (r *Router) DELETE(pattern string, handler HandlerFunc) {
	r.register(http.MethodDelete, pattern, handler)
}

// Handler returns the router as an http.Handler, mainly for httptest
func (r *Router) Handler() http.Handler {
	return http.HandlerFunc(r.serve)
}

func (r *Router) serve(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	rt := r.match(req.URL.Path)
	switch {
	case rt == nil:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	case rt.handlers[req.Method] == nil:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		rt.handlers[req.Method](lrw, req)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// match finds the route for a request path, preferring exact patterns
func (r *Router) match(path string) *route {
	if rt, ok := r.exact[path]; ok {
		return rt
	}
	segments := splitPath(path)
	for _, rt := range r.wildcard {
		if matchSegments(segments, rt.segments) {
			return rt
		}
	}
	return nil
}

// matchSegments matches a request path against a pattern segment by
// segment. "*" matches exactly one segment, except as the final
// pattern segment where it matches one or more.
func matchSegments(path, pattern []string) bool {
	trailing := pattern[len(pattern)-1] == "*"
	if trailing {
		if len(path) < len(pattern) {
			return false
		}
	} else if len(path) != len(pattern) {
		return false
	}
	for i, seg := range pattern {
		if seg == "*" {
			continue
		}
		if i >= len(path) || path[i] != seg {
			return false
		}
	}
	if !trailing && len(path) > len(pattern) {
		return false
	}
	return true
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

// Start runs the server; it only returns on a fatal listen error
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r.Handler()))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
