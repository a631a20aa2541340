package handlers

import (
	"net/http"

	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
)

// LoadDataHandler fills the store from the shipped json fixtures: the GET
// form selects what to load, the POST runs the loader.
type LoadDataHandler struct {
	View
	Loader *storage.FixtureLoader
}

func (h *LoadDataHandler) Handle(r *framework.Request) (string, string) {
	if r.Method != http.MethodPost {
		return h.page("fill_db.html", h.context(r, "Load data"))
	}

	var loaded int
	if r.Param("data_category") != "" {
		n, err := h.Loader.LoadCategories()
		if err != nil {
			h.Log.Log("fixture load failed: %v", err)
			return "500 Internal Server Error", "<h1>Internal server error</h1>"
		}
		loaded += n
	}
	if r.Param("data_product") != "" {
		n, err := h.Loader.LoadProducts()
		if err != nil {
			h.Log.Log("fixture load failed: %v", err)
			return "500 Internal Server Error", "<h1>Internal server error</h1>"
		}
		loaded += n
	}

	h.Log.Log("fixtures loaded: %d records", loaded)

	r.Redirect("/products/")
	return "302 Found", ""
}
