package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
)

// ProductsHandler lists every product with the category tree.
type ProductsHandler struct {
	View
}

func (h *ProductsHandler) Handle(r *framework.Request) (string, string) {
	ctx := h.context(r, "Products")
	ctx["product_list"] = h.Eng.AllProducts()
	ctx["category_list"] = h.Eng.AllCategories()

	return h.page("products.html", ctx)
}

// CreateProductHandler shows the product form and creates products from
// POSTed data: category id and price are validated up front, the variant
// discriminator goes through the engine's closed factory.
type CreateProductHandler struct {
	View
	Products *storage.ProductMapper
}

func (h *CreateProductHandler) Handle(r *framework.Request) (string, string) {
	ctx := h.context(r, "New product")
	ctx["category_list"] = h.Eng.AllCategories()
	ctx["error"] = ""

	if r.Method != http.MethodPost {
		return h.page("create_product.html", ctx)
	}

	categoryID, err := r.IntParam("category_id")
	if err != nil {
		ctx["error"] = "a category must be selected"
		return h.page("create_product.html", ctx)
	}
	category, err := h.Eng.CategoryByID(categoryID)
	if err != nil {
		return h.notFound("no such category")
	}

	name := r.Param("name")
	if name == "" {
		return h.badRequest("product name is required")
	}
	price, err := strconv.ParseFloat(r.Param("price"), 64)
	if err != nil || price < 0 {
		return h.badRequest("price must be a non-negative number")
	}

	product, err := h.Eng.CreateProduct(r.Param("product_type"), name, category, price)
	if err != nil {
		return h.badRequest("unknown product type")
	}
	if err := h.Products.Insert(product); err != nil {
		h.Log.Log("failed to persist product %q: %v", name, err)
		return "500 Internal Server Error", "<h1>Internal server error</h1>"
	}

	h.Metrics.ProductsCreated.Add(1)
	h.Log.Log("created product %q (id %d)", name, product.ID)

	r.Redirect(fmt.Sprintf("/products/category/?id=%d", categoryID))
	return "302 Found", ""
}

// CategoryProductsHandler lists the products of one category, selected by
// the id query parameter.
type CategoryProductsHandler struct {
	View
}

func (h *CategoryProductsHandler) Handle(r *framework.Request) (string, string) {
	id, err := r.IntParam("id")
	if err != nil {
		return h.badRequest("category id must be a number")
	}

	ctx := h.context(r, "Products")
	ctx["product_list"] = h.Eng.ProductsByCategory(id)
	ctx["category_list"] = h.Eng.AllCategories()

	return h.page("products.html", ctx)
}
