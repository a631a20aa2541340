package models

// Basket belongs to exactly one user. Items keep insertion order and the
// same product may appear more than once.
type Basket struct {
	Owner *User
	Items []*Product
}

func NewBasket(owner *User) *Basket {
	return &Basket{Owner: owner}
}

func (b *Basket) Add(p *Product) {
	b.Items = append(b.Items, p)
}

// TotalPrice sums the current prices of the basket items. Orders snapshot
// this at creation time; the basket itself always reflects live prices.
func (b *Basket) TotalPrice() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.Price
	}
	return total
}
