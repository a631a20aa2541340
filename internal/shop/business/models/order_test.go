package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	name  string
	seen  []int64
	trail *[]string
	fail  error
}

func (r *recordingObserver) Update(o *Order) error {
	r.seen = append(r.seen, o.ID)
	if r.trail != nil {
		*r.trail = append(*r.trail, r.name)
	}
	return r.fail
}

type nopPayment struct{ paid []float64 }

func (p *nopPayment) Pay(amount float64) error {
	p.paid = append(p.paid, amount)
	return nil
}

func testBasketItems() []*Product {
	return []*Product{
		{Name: "Phone", Price: 100},
		{Name: "Laptop", Price: 250},
		{Name: "Cable", Price: 50},
	}
}

func TestOrderTotalPrice(t *testing.T) {
	order := NewOrder(1, &User{Kind: UserBuyer, Name: "ann"}, testBasketItems())

	assert.Equal(t, 400.0, order.TotalPrice())
}

func TestOrderSnapshotsPricesAtCreation(t *testing.T) {
	items := testBasketItems()
	order := NewOrder(1, &User{Name: "ann"}, items)

	// a later price change must not reach the placed order
	items[0].Price = 9000

	assert.Equal(t, 400.0, order.TotalPrice())
}

func TestPayNotifiesObserversInAttachOrder(t *testing.T) {
	order := NewOrder(7, &User{Name: "ann"}, testBasketItems())

	var trail []string
	email := &recordingObserver{name: "email", trail: &trail}
	sms := &recordingObserver{name: "sms", trail: &trail}
	order.Attach(email)
	order.Attach(sms)

	payment := &nopPayment{}
	require.NoError(t, order.Pay(payment))

	assert.Equal(t, []float64{400}, payment.paid)
	assert.Equal(t, []string{"email", "sms"}, trail)
	assert.Equal(t, []int64{7}, email.seen)
	assert.Equal(t, []int64{7}, sms.seen)
	assert.True(t, order.Paid)
}

func TestNotifyIsolatesObserverFailures(t *testing.T) {
	order := NewOrder(2, &User{Name: "bob"}, testBasketItems())

	failing := &recordingObserver{name: "email", fail: errors.New("smtp down")}
	healthy := &recordingObserver{name: "sms"}
	order.Attach(failing)
	order.Attach(healthy)

	err := order.Pay(&nopPayment{})

	require.Error(t, err)
	assert.Equal(t, []int64{2}, healthy.seen, "failure of one observer must not block the rest")
	assert.True(t, order.Paid)
}

func TestDetachStopsUpdates(t *testing.T) {
	order := NewOrder(3, &User{Name: "bob"}, nil)

	obs := &recordingObserver{name: "email"}
	order.Attach(obs)
	order.Detach(obs)

	require.NoError(t, order.Notify())
	assert.Empty(t, obs.seen)
}

func TestBasketAllowsDuplicatesAndKeepsOrder(t *testing.T) {
	owner := &User{Kind: UserBuyer, Name: "ann"}
	basket := NewBasket(owner)
	phone := &Product{Name: "Phone", Price: 100}

	basket.Add(phone)
	basket.Add(phone)

	require.Len(t, basket.Items, 2)
	assert.Same(t, phone, basket.Items[0])
	assert.Same(t, phone, basket.Items[1])
	assert.Equal(t, 200.0, basket.TotalPrice())
}
