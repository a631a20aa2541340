// Package web assembles the route table and the front chain. Routes are
// constructed data, built once during application wiring.
package web

import (
	"time"

	"gowebshop/internal/shop/app/web/handlers"
	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
	"gowebshop/pkg/logger"
)

// HandlerSet holds one instance of every view handler.
type HandlerSet struct {
	Index            framework.Handler
	Products         framework.Handler
	CreateCategory   framework.Handler
	CreateProduct    framework.Handler
	CategoryProducts framework.Handler
	Contacts         framework.Handler
	Load             framework.Handler
	Basket           framework.Handler
	BasketAdd        framework.Handler
	OrderCreate      framework.Handler
	OrderPay         framework.Handler
}

func NewHandlerSet(view handlers.View, categories *storage.CategoryMapper,
	products *storage.ProductMapper, loader *storage.FixtureLoader,
	notifierLog logger.Logger) *HandlerSet {
	return &HandlerSet{
		Index:            &handlers.IndexHandler{View: view},
		Products:         &handlers.ProductsHandler{View: view},
		CreateCategory:   &handlers.CreateCategoryHandler{View: view, Categories: categories},
		CreateProduct:    &handlers.CreateProductHandler{View: view, Products: products},
		CategoryProducts: &handlers.CategoryProductsHandler{View: view},
		Contacts:         &handlers.ContactsHandler{View: view},
		Load:             &handlers.LoadDataHandler{View: view, Loader: loader},
		Basket:           &handlers.BasketHandler{View: view},
		BasketAdd:        &handlers.BasketAddHandler{View: view},
		OrderCreate:      &handlers.OrderCreateHandler{View: view},
		OrderPay:         &handlers.OrderPayHandler{View: view, NotifierLog: notifierLog},
	}
}

// SetupRoutes binds every handler to its path.
func SetupRoutes(app *framework.App, set *HandlerSet) {
	app.Register("/", set.Index)
	app.Register("/products/", set.Products)
	app.Register("/products/create-category/", set.CreateCategory)
	app.Register("/products/create-product/", set.CreateProduct)
	app.Register("/products/category/", set.CategoryProducts)
	app.Register("/products/load/", set.Load)
	app.Register("/contacts/", set.Contacts)
	app.Register("/basket/", set.Basket)
	app.Register("/basket/add/", set.BasketAdd)
	app.Register("/order/create/", set.OrderCreate)
	app.Register("/order/pay/", set.OrderPay)
}

// SetupFronts installs the pre-processing chain: copyright year, request
// path and the session slot. Order matters and is covered by tests.
func SetupFronts(app *framework.App, session *handlers.Session) {
	app.Use(func(r *framework.Request) {
		r.Values["year"] = time.Now().Year()
	})
	app.Use(func(r *framework.Request) {
		r.Values["path"] = r.Path
	})
	app.Use(func(r *framework.Request) {
		r.Session = session
	})
}
