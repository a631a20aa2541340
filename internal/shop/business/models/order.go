package models

import "errors"

// OrderLine freezes one basket position. Price is copied at order creation
// so that later product price changes never reach a placed order.
type OrderLine struct {
	Product *Product
	Price   float64
}

// Order is a snapshot of a basket plus the subject side of the
// order-paid notification pair.
type Order struct {
	ID    int64
	Buyer *User
	Lines []OrderLine
	Paid  bool

	observers []Observer
}

// NewOrder copies the given product list into line items, snapshotting the
// current price of every position.
func NewOrder(id int64, buyer *User, items []*Product) *Order {
	lines := make([]OrderLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, OrderLine{Product: item, Price: item.Price})
	}
	return &Order{ID: id, Buyer: buyer, Lines: lines}
}

// TotalPrice sums the snapshotted line prices.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price
	}
	return total
}

func (o *Order) Attach(obs Observer) {
	o.observers = append(o.observers, obs)
}

func (o *Order) Detach(obs Observer) {
	for i, existing := range o.observers {
		if existing == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// Notify runs every observer in attachment order. One failing observer does
// not stop the others; all failures are joined into the returned error.
func (o *Order) Notify() error {
	var errs []error
	for _, obs := range o.observers {
		if err := obs.Update(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Pay charges the snapshotted total through the given method, marks the
// order paid and notifies every observer before returning.
func (o *Order) Pay(method PaymentMethod) error {
	if err := method.Pay(o.TotalPrice()); err != nil {
		return err
	}
	o.Paid = true
	return o.Notify()
}
