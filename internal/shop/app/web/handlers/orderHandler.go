package handlers

import (
	"net/http"

	"gowebshop/internal/shop/business/models"
	"gowebshop/internal/shop/framework"
	"gowebshop/pkg/logger"
)

// OrderCreateHandler snapshots the session user's basket into an order.
type OrderCreateHandler struct {
	View
}

func (h *OrderCreateHandler) Handle(r *framework.Request) (string, string) {
	if r.Method != http.MethodPost {
		return h.badRequest("POST required")
	}

	user := SessionUser(r)
	if user == nil {
		return h.badRequest("no current user")
	}

	order, err := h.Eng.CreateOrder(user)
	if err != nil {
		return h.notFound("nothing to order: the basket is empty")
	}

	h.Metrics.OrdersCreated.Add(1)
	h.Log.Log("order %d created for %q, total %.2f", order.ID, user.Name, order.TotalPrice())

	ctx := h.context(r, "Order placed")
	ctx["order"] = order
	ctx["total"] = order.TotalPrice()
	ctx["currency"] = h.Values.Currency

	return h.page("order.html", ctx)
}

// OrderPayHandler charges an order through the selected payment method and
// notifies the attached observers. The method discriminator is a closed
// set, like every other variant in the system.
type OrderPayHandler struct {
	View
	NotifierLog logger.Logger
}

func (h *OrderPayHandler) paymentMethod(kind string) models.PaymentMethod {
	switch kind {
	case "card":
		return models.NewCardPayment(h.Log)
	case "cash":
		return models.NewCashPayment(h.Log)
	default:
		return nil
	}
}

func (h *OrderPayHandler) Handle(r *framework.Request) (string, string) {
	if r.Method != http.MethodPost {
		return h.badRequest("POST required")
	}

	user := SessionUser(r)
	if user == nil {
		return h.badRequest("no current user")
	}

	id, err := r.IntParam("id")
	if err != nil {
		return h.badRequest("order id must be a number")
	}
	order, err := h.Eng.OrderByID(id)
	if err != nil {
		return h.notFound("no such order")
	}

	method := h.paymentMethod(r.Param("method"))
	if method == nil {
		return h.badRequest("unknown payment method")
	}

	order.Attach(models.NewEmailNotifier(h.NotifierLog, user.Name+"@customers.local"))
	order.Attach(models.NewSMSNotifier(h.NotifierLog, user.Name))

	if err := order.Pay(method); err != nil {
		// the order is paid even when a notifier failed; log and carry on
		h.Log.Log("order %d: notification trouble: %v", order.ID, err)
	}
	if order.Paid {
		h.Metrics.OrdersPaid.Add(1)
	}

	ctx := h.context(r, "Payment")
	ctx["order"] = order
	ctx["total"] = order.TotalPrice()
	ctx["currency"] = h.Values.Currency

	return h.page("order_paid.html", ctx)
}
