// Package app wires the pieces into a runnable shop server: store,
// migrations, engine, routes, middleware.
package app

import (
	"fmt"
	"net/http"

	"gowebshop/config"
	"gowebshop/internal/shop/app/web"
	"gowebshop/internal/shop/app/web/handlers"
	"gowebshop/internal/shop/business/engine"
	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
	"gowebshop/metrics"
	"gowebshop/migrations/shop"
	"gowebshop/pkg/dbconnect"
	"gowebshop/pkg/dbconnect/migration"
	"gowebshop/pkg/dbconnect/postgres"
	"gowebshop/pkg/dbconnect/sqlite"
	"gowebshop/pkg/logger"
	"gowebshop/pkg/middleware"
	"gowebshop/pkg/templator"
)

const fixturesDir = "json"

type ShopServer struct {
	cfg     *config.AppConfig
	loggers *logger.Registry
}

func NewShopServer(cfg *config.AppConfig, loggers *logger.Registry) *ShopServer {
	return &ShopServer{cfg: cfg, loggers: loggers}
}

func (s *ShopServer) connector() dbconnect.Database {
	if s.cfg.Driver == "postgres" {
		return postgres.NewPgConnector(s.cfg.Postgres, s.loggers.Get("postgres"))
	}
	return sqlite.NewSqliteConnector(s.cfg.Sqlite.Path)
}

// Run blocks serving HTTP until the listener fails.
func (s *ShopServer) Run() error {
	log := s.loggers.Get("server")

	database := s.connector()
	db, err := database.Connect()
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", database.Dialect(), err)
	}
	defer db.Close()

	migrationApply := []migration.MigrationInterface{
		&shop.CreateMigrationsTable{},
		&shop.CreateCategoryTable{},
		&shop.CreateProductTable{},
	}
	for _, m := range migrationApply {
		if err := m.UpMigration(db, database.Dialect()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	eng := engine.NewEngine(s.loggers.Get("engine"), s.cfg.Shop.MainFeedSize)

	storageLog := s.loggers.Get("storage")
	categories := storage.NewCategoryMapper(db, database.Dialect(), storageLog)
	products := storage.NewProductMapper(db, database.Dialect(), categories, storageLog)
	if err := storage.Hydrate(eng, categories, products); err != nil {
		return fmt.Errorf("failed to hydrate engine: %w", err)
	}

	// the session slot starts with an anonymous buyer; a login flow would
	// swap the user in
	guest, err := eng.CreateUser("buyer", "guest", "")
	if err != nil {
		return err
	}
	session := &handlers.Session{User: guest}

	view := handlers.View{
		Eng:          eng,
		Renderer:     templator.NewHTMLRenderer(),
		TemplatesDir: s.cfg.Server.TemplatesDir,
		Log:          s.loggers.Get("views"),
		Values:       s.cfg.Shop,
		Metrics:      &metrics.ShopMetrics{},
	}
	loader := storage.NewFixtureLoader(eng, categories, products, s.loggers.Get("fixtures"), fixturesDir)
	set := web.NewHandlerSet(view, categories, products, loader, s.loggers.Get("notifications"))

	dispatcher := framework.NewApp(s.loggers.Get("dispatcher"))
	web.SetupFronts(dispatcher, session)
	web.SetupRoutes(dispatcher, set)

	rateLimited := middleware.RateLimitMiddleware(s.cfg.Server.RateLimit, s.cfg.Server.RateBurst)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.MetricsHandler())
	mux.Handle("/", middleware.PrometheusMiddleware(rateLimited(dispatcher)))

	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	log.Log("shop server listening on %s (%s store)", addr, database.Dialect())
	return http.ListenAndServe(addr, mux)
}
