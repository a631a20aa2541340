package handlers

import "gowebshop/internal/shop/framework"

// IndexHandler shows the landing page with the recently added products.
type IndexHandler struct {
	View
}

func (h *IndexHandler) Handle(r *framework.Request) (string, string) {
	ctx := h.context(r, "Main")
	ctx["product_list"] = h.Eng.MainProducts()

	return h.page("index.html", ctx)
}
