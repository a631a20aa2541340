package handlers

import (
	"net/http"

	"gowebshop/internal/shop/framework"
)

// BasketHandler shows the session user's basket.
type BasketHandler struct {
	View
}

func (h *BasketHandler) Handle(r *framework.Request) (string, string) {
	user := SessionUser(r)
	if user == nil {
		return h.badRequest("no current user")
	}

	basket := h.Eng.CreateBasket(user)

	ctx := h.context(r, "Basket")
	ctx["basket"] = basket
	ctx["total"] = basket.TotalPrice()
	ctx["currency"] = h.Values.Currency

	return h.page("basket.html", ctx)
}

// BasketAddHandler puts a product into the session user's basket. The same
// product may be added repeatedly.
type BasketAddHandler struct {
	View
}

func (h *BasketAddHandler) Handle(r *framework.Request) (string, string) {
	if r.Method != http.MethodPost {
		return h.badRequest("POST required")
	}

	user := SessionUser(r)
	if user == nil {
		return h.badRequest("no current user")
	}

	id, err := r.IntParam("id")
	if err != nil {
		return h.badRequest("product id must be a number")
	}
	product, err := h.Eng.ProductByID(id)
	if err != nil {
		return h.notFound("no such product")
	}

	h.Eng.AddToBasket(user, product)
	h.Log.Log("added product %d to basket of %q", id, user.Name)

	r.Redirect("/basket/")
	return "302 Found", ""
}
