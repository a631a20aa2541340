// Package framework is the request dispatcher: it normalizes the path, runs
// the registered fronts over a mutable request context and hands the request
// to the handler bound to the path.
package framework

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"gowebshop/pkg/logger"
)

// Handler produces a status line and a body for one request. Handlers never
// touch the transport.
type Handler interface {
	Handle(r *Request) (status string, body string)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(r *Request) (string, string)

func (f HandlerFunc) Handle(r *Request) (string, string) {
	return f(r)
}

// Front is a pre-processing step run on every request before dispatch.
// Fronts run in registration order and cannot short-circuit the chain.
type Front func(r *Request)

// NotFoundHandler answers for every unregistered path. It holds no
// references into the domain.
type NotFoundHandler struct{}

func (NotFoundHandler) Handle(_ *Request) (string, string) {
	return "404 Not Found", "<h1>Page not found</h1>"
}

// App is the framework core: a route table plus an ordered front chain.
type App struct {
	log      logger.Logger
	routes   map[string]Handler
	fronts   []Front
	notFound Handler
}

func NewApp(log logger.Logger) *App {
	return &App{
		log:      log,
		routes:   make(map[string]Handler),
		notFound: NotFoundHandler{},
	}
}

// Register binds a handler to an exact path. Registration happens during
// application assembly; re-registering a path overwrites the previous
// handler (last writer wins, logged).
func (a *App) Register(path string, h Handler) {
	path = normalizePath(path)
	if _, exists := a.routes[path]; exists {
		a.log.Log("route %q re-registered, previous handler replaced", path)
	}
	a.routes[path] = h
}

// Use appends a front to the chain.
func (a *App) Use(f Front) {
	a.fronts = append(a.fronts, f)
}

// normalizePath appends the trailing separator if absent. This is the only
// normalization: no case folding, no query stripping.
func normalizePath(path string) string {
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	return path
}

// ServeHTTP drives one request through the states: normalize path, build
// context, run fronts, resolve handler, invoke, respond.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := normalizePath(r.URL.Path)

	req, err := a.buildContext(r, path)
	if err != nil {
		a.log.Log("bad request on %s: %v", path, err)
		a.respond(w, nil, "400 Bad Request", "<h1>Bad request</h1>")
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			a.log.Log("panic serving %s: %v", path, rec)
			a.respond(w, nil, "500 Internal Server Error", "<h1>Internal server error</h1>")
		}
	}()

	for _, front := range a.fronts {
		front(req)
	}

	handler, ok := a.routes[path]
	if !ok {
		handler = a.notFound
	}

	status, body := handler.Handle(req)
	a.respond(w, req, status, body)
}

func (a *App) buildContext(r *http.Request, path string) (*Request, error) {
	var raw string
	switch r.Method {
	case http.MethodPost:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		raw = string(data)
	default:
		raw = r.URL.RawQuery
	}

	params, err := ParseParams(raw)
	if err != nil {
		return nil, err
	}
	params, err = decodeParams(params)
	if err != nil {
		return nil, err
	}

	return newRequest(r.Method, path, params), nil
}

// respond writes the handler's status line and body with the fixed content
// type. A recorded redirect target becomes the Location header.
func (a *App) respond(w http.ResponseWriter, req *Request, status, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if req != nil && req.location != "" {
		w.Header().Set("Location", req.location)
	}
	w.WriteHeader(statusCode(status))
	fmt.Fprint(w, body)
}

// statusCode extracts the numeric code from a status line like "200 OK".
func statusCode(status string) int {
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return http.StatusOK
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return http.StatusOK
	}
	return code
}
