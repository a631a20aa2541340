package handlers

import "gowebshop/internal/shop/framework"

// ContactsHandler shows the static contacts page.
type ContactsHandler struct {
	View
}

func (h *ContactsHandler) Handle(r *framework.Request) (string, string) {
	ctx := h.context(r, "Contacts")
	ctx["email"] = h.Values.ContactEmail

	return h.page("contact.html", ctx)
}
