package handlers

import (
	"net/http"

	"gowebshop/internal/shop/business/models"
	"gowebshop/internal/shop/framework"
	"gowebshop/internal/shop/storage"
)

// CreateCategoryHandler shows the category form and creates categories from
// POSTed data. The new category becomes durable before the redirect: mapper
// insert first, id assignment happens inside the mapper.
type CreateCategoryHandler struct {
	View
	Categories *storage.CategoryMapper
}

func (h *CreateCategoryHandler) Handle(r *framework.Request) (string, string) {
	if r.Method != http.MethodPost {
		ctx := h.context(r, "New category")
		ctx["category_list"] = h.Eng.AllCategories()
		return h.page("create_category.html", ctx)
	}

	name := r.Param("name")
	if name == "" {
		return h.badRequest("category name is required")
	}

	var parent *models.Category
	if r.Param("category_id") != "" {
		id, err := r.IntParam("category_id")
		if err != nil {
			return h.badRequest("parent category id must be a number")
		}
		parent, err = h.Eng.CategoryByID(id)
		if err != nil {
			return h.notFound("no such parent category")
		}
	}

	category := h.Eng.CreateCategory(name, parent, r.Param("desc"), r.Param("img"))
	if err := h.Categories.Insert(category); err != nil {
		h.Log.Log("failed to persist category %q: %v", name, err)
		return "500 Internal Server Error", "<h1>Internal server error</h1>"
	}

	h.Metrics.CategoriesCreated.Add(1)
	h.Log.Log("created category %q (id %d)", name, category.ID)

	r.Redirect("/products/")
	return "302 Found", ""
}
