package framework

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowebshop/pkg/logger"
)

func newTestApp() *App {
	return NewApp(logger.NewLogger(io.Discard, "[test]"))
}

type countingHandler struct {
	calls int
	last  *Request
}

func (h *countingHandler) Handle(r *Request) (string, string) {
	h.calls++
	h.last = r
	return "200 OK", "ok"
}

func serve(app *App, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(method, target, reader))
	return rec
}

func TestDispatchExactPathWithAndWithoutSlash(t *testing.T) {
	app := newTestApp()
	h := &countingHandler{}
	app.Register("/x", h)

	rec := serve(app, http.MethodGet, "/x", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, h.calls)

	rec = serve(app, http.MethodGet, "/x/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, h.calls)
}

func TestDispatchUnknownPathHitsNotFound(t *testing.T) {
	app := newTestApp()
	h := &countingHandler{}
	app.Register("/x/", h)

	rec := serve(app, http.MethodGet, "/nope/", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
	assert.Equal(t, 0, h.calls)
}

func TestFrontsRunInOrderAndMutationsAreVisible(t *testing.T) {
	app := newTestApp()

	var order []string
	app.Use(func(r *Request) {
		order = append(order, "year")
		r.Values["year"] = 2024
	})
	app.Use(func(r *Request) {
		order = append(order, "user")
		// the second front sees what the first one wrote
		if _, ok := r.Values["year"]; ok {
			r.Values["user"] = "guest"
		}
	})

	h := &countingHandler{}
	app.Register("/", h)

	serve(app, http.MethodGet, "/", "")

	assert.Equal(t, []string{"year", "user"}, order)
	require.NotNil(t, h.last)
	assert.Equal(t, 2024, h.last.Values["year"])
	assert.Equal(t, "guest", h.last.Values["user"])
}

func TestGetRequestCarriesDecodedQueryParams(t *testing.T) {
	app := newTestApp()
	h := &countingHandler{}
	app.Register("/products/category/", h)

	serve(app, http.MethodGet, "/products/category/?id=3&label=New+Year", "")

	require.NotNil(t, h.last)
	assert.Equal(t, "3", h.last.Param("id"))
	assert.Equal(t, "New Year", h.last.Param("label"))
}

func TestPostRequestCarriesDecodedBodyParams(t *testing.T) {
	app := newTestApp()
	h := &countingHandler{}
	app.Register("/create/", h)

	serve(app, http.MethodPost, "/create/", "name=%D0%A2%D0%B5%D1%81%D1%82&price=100")

	require.NotNil(t, h.last)
	assert.Equal(t, http.MethodPost, h.last.Method)
	assert.Equal(t, "Тест", h.last.Param("name"))
	assert.Equal(t, "100", h.last.Param("price"))
}

func TestMalformedInputRejectedBeforeHandler(t *testing.T) {
	app := newTestApp()
	h := &countingHandler{}
	app.Register("/create/", h)

	rec := serve(app, http.MethodPost, "/create/", "no-separator-here")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, h.calls)
}

func TestPanicInHandlerBecomes500(t *testing.T) {
	app := newTestApp()
	app.Register("/boom/", HandlerFunc(func(r *Request) (string, string) {
		panic("handler exploded")
	}))

	rec := serve(app, http.MethodGet, "/boom/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReRegisterOverwrites(t *testing.T) {
	app := newTestApp()
	first := &countingHandler{}
	second := &countingHandler{}
	app.Register("/x/", first)
	app.Register("/x/", second)

	serve(app, http.MethodGet, "/x/", "")

	assert.Equal(t, 0, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestRedirectSetsLocation(t *testing.T) {
	app := newTestApp()
	app.Register("/create/", HandlerFunc(func(r *Request) (string, string) {
		r.Redirect("/products/")
		return "302 Found", ""
	}))

	rec := serve(app, http.MethodPost, "/create/", "name=Phone")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/products/", rec.Header().Get("Location"))
}

func TestContentTypeIsAlwaysHTML(t *testing.T) {
	app := newTestApp()
	rec := serve(app, http.MethodGet, "/missing/", "")

	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
