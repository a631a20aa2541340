package models

// ProductKind discriminates goods from services; the value is persisted as
// the product_type column and drives row reconstruction.
type ProductKind string

const (
	ProductReal    ProductKind = "product"
	ProductService ProductKind = "service"
)

// Product follows the same id lifecycle as Category: 0 until persisted.
// Price is non-negative by convention, not enforced.
type Product struct {
	ID       int64
	Kind     ProductKind
	Name     string
	Category *Category
	Price    float64
	Desc     string
	Img      string
}

// CategoryID reports the owning category's id, or 0 when unset.
func (p *Product) CategoryID() int64 {
	if p.Category == nil {
		return 0
	}
	return p.Category.ID
}
