package metrics

import "sync/atomic"

// ShopMetrics counts domain events. Handlers bump the counters; tests read
// them back.
type ShopMetrics struct {
	ProductsCreated   atomic.Int32
	CategoriesCreated atomic.Int32
	OrdersCreated     atomic.Int32
	OrdersPaid        atomic.Int32
}
