package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowebshop/config/values"
	"gowebshop/internal/shop/app/web/handlers"
	"gowebshop/internal/shop/business/engine"
	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
	"gowebshop/metrics"
	"gowebshop/migrations/shop"
	"gowebshop/pkg/dbconnect/migration"
	"gowebshop/pkg/dbconnect/sqlite"
	"gowebshop/pkg/logger"
)

type echoRenderer struct{}

func (echoRenderer) Render(name, folder string, ctx map[string]interface{}) (string, error) {
	return "rendered:" + name, nil
}

func newTestApp(t *testing.T) (*framework.App, *engine.Engine) {
	t.Helper()

	connector := sqlite.NewSqliteConnector(":memory:")
	db, err := connector.Connect()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	for _, m := range []migration.MigrationInterface{
		&shop.CreateMigrationsTable{},
		&shop.CreateCategoryTable{},
		&shop.CreateProductTable{},
	} {
		require.NoError(t, m.UpMigration(db, connector.Dialect()))
	}

	log := logger.NewLogger(io.Discard, "[test]")
	eng := engine.NewEngine(log, 3)
	categories := storage.NewCategoryMapper(db, connector.Dialect(), log)
	products := storage.NewProductMapper(db, connector.Dialect(), categories, log)

	guest, err := eng.CreateUser("buyer", "guest", "")
	require.NoError(t, err)

	view := handlers.View{
		Eng:          eng,
		Renderer:     echoRenderer{},
		TemplatesDir: "templates",
		Log:          log,
		Values:       values.Defaults(),
		Metrics:      &metrics.ShopMetrics{},
	}
	loader := storage.NewFixtureLoader(eng, categories, products, log, t.TempDir())
	set := NewHandlerSet(view, categories, products, loader, log)

	app := framework.NewApp(log)
	SetupFronts(app, &handlers.Session{User: guest})
	SetupRoutes(app, set)
	return app, eng
}

func get(app *framework.App, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func post(app *framework.App, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, strings.NewReader(body)))
	return rec
}

func TestRegisteredRoutesRespond(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{
		"/", "/products/", "/products/create-category/", "/products/create-product/",
		"/contacts/", "/products/load/", "/basket/",
	} {
		rec := get(app, path)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", path)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	app, _ := newTestApp(t)

	rec := get(app, "/admin/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestCreateCategoryThroughDispatcher(t *testing.T) {
	app, eng := newTestApp(t)

	rec := post(app, "/products/create-category/", "name=Phones")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/products/", rec.Header().Get("Location"))

	category, err := eng.CategoryByName("Phones")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
}

func TestCreateCategoryDecodesLegacyEncoding(t *testing.T) {
	app, eng := newTestApp(t)

	// "Тест" in the legacy %-escaped quoted-printable form
	rec := post(app, "/products/create-category/", "name=%D0%A2%D0%B5%D1%81%D1%82")

	assert.Equal(t, http.StatusFound, rec.Code)
	_, err := eng.CategoryByName("Тест")
	assert.NoError(t, err)
}

func TestFullPurchaseFlowThroughDispatcher(t *testing.T) {
	app, eng := newTestApp(t)

	require.Equal(t, http.StatusFound, post(app, "/products/create-category/", "name=Phones").Code)
	require.Equal(t, http.StatusFound,
		post(app, "/products/create-product/", "category_id=1&name=Phone&price=100&product_type=product").Code)

	rec := post(app, "/basket/add/", "id=1")
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/basket/", rec.Header().Get("Location"))

	require.Equal(t, http.StatusOK, post(app, "/order/create/", "").Code)

	rec = post(app, "/order/pay/", "id=1&method=cash")
	require.Equal(t, http.StatusOK, rec.Code)

	order, err := eng.OrderByID(1)
	require.NoError(t, err)
	assert.True(t, order.Paid)
	assert.Equal(t, 100.0, order.TotalPrice())
}

func TestSessionFrontPopulatesCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)

	// /basket/ requires a session user; the front must have installed one
	rec := get(app, "/basket/")
	assert.Equal(t, http.StatusOK, rec.Code)
}
