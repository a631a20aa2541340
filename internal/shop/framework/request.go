package framework

import (
	"strconv"

	"gowebshop/internal/shop/business/errs"
)

// Request is the mutable per-request context. Fronts write into Values and
// Session before the handler runs; the handler reads all of it.
type Request struct {
	Method string
	Path   string

	// Params holds the decoded body parameters for POST and the decoded
	// query parameters for GET, never both.
	Params map[string]string

	// Values collects whatever the fronts attach (year, path, ...).
	Values map[string]interface{}

	// Session is the explicit current-user slot, populated by a session
	// front. The web layer decides its concrete type.
	Session interface{}

	// location is set via Redirect and consumed by the dispatcher.
	location string
}

func newRequest(method, path string, params map[string]string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Params: params,
		Values: make(map[string]interface{}),
	}
}

// Param returns the named parameter or "".
func (r *Request) Param(name string) string {
	return r.Params[name]
}

// IntParam validates and converts a numeric route parameter. Missing or
// non-digit input fails with a validation error carrying the parameter name.
func (r *Request) IntParam(name string) (int64, error) {
	raw, ok := r.Params[name]
	if !ok || raw == "" {
		return 0, errs.Validation("missing parameter %q", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Validation("parameter %q is not a number: %q", name, raw)
	}
	return id, nil
}

// Redirect records the target for a 3xx response.
func (r *Request) Redirect(url string) {
	r.location = url
}
