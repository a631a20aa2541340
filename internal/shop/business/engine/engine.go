// Package engine is the domain facade. It exclusively owns the in-memory
// collections of users, categories, products, baskets and orders; every
// mutation goes through the engine's single mutex because the HTTP server
// serves requests concurrently.
package engine

import (
	"sync"

	"gowebshop/internal/shop/business/errs"
	"gowebshop/internal/shop/business/models"
	"gowebshop/pkg/logger"
)

const defaultFeedSize = 3

type Engine struct {
	mu  sync.Mutex
	log logger.Logger

	feedSize int

	users      []*models.User
	categories []*models.Category
	products   []*models.Product
	baskets    map[*models.User]*models.Basket
	orders     []*models.Order

	nextOrderID int64
}

func NewEngine(log logger.Logger, feedSize int) *Engine {
	if feedSize <= 0 {
		feedSize = defaultFeedSize
	}
	return &Engine{
		log:      log,
		feedSize: feedSize,
		baskets:  make(map[*models.User]*models.Basket),
	}
}

// CreateUser builds a user of the given kind and takes ownership of it.
// An unknown kind fails with a validation error. Duplicate names are
// permitted; lookups return the first match.
func (e *Engine) CreateUser(kind, name, password string) (*models.User, error) {
	user, err := newUser(kind, name, password)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.users = append(e.users, user)
	e.log.Log("created %s %q", kind, name)
	return user, nil
}

// CreateCategory builds a transient category (id 0 until a mapper persists
// it) and registers it with the engine.
func (e *Engine) CreateCategory(name string, parent *models.Category, desc, img string) *models.Category {
	category := &models.Category{Name: name, Parent: parent, Desc: desc, Img: img}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.categories = append(e.categories, category)
	e.log.Log("created category %q", name)
	return category
}

// CreateProduct builds a product of the given kind and registers it.
// An unknown kind fails with a validation error.
func (e *Engine) CreateProduct(kind, name string, category *models.Category, price float64) (*models.Product, error) {
	product, err := newProduct(kind, name, category, price)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.products = append(e.products, product)
	e.log.Log("created %s %q", kind, name)
	return product, nil
}

// RegisterCategory adopts a mapper-reconstructed category (start-up
// hydration, fixture loading).
func (e *Engine) RegisterCategory(category *models.Category) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.categories = append(e.categories, category)
}

// RegisterProduct adopts a mapper-reconstructed product.
func (e *Engine) RegisterProduct(product *models.Product) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.products = append(e.products, product)
}

// CreateBasket returns the user's basket, creating it on first call.
// Repeated calls with the same user return the same basket.
func (e *Engine) CreateBasket(user *models.User) *models.Basket {
	e.mu.Lock()
	defer e.mu.Unlock()

	if basket, ok := e.baskets[user]; ok {
		return basket
	}
	basket := models.NewBasket(user)
	e.baskets[user] = basket
	return basket
}

// AddToBasket appends the product to the user's basket, creating the basket
// if needed. Duplicates are allowed.
func (e *Engine) AddToBasket(user *models.User, product *models.Product) *models.Basket {
	e.mu.Lock()
	defer e.mu.Unlock()

	basket, ok := e.baskets[user]
	if !ok {
		basket = models.NewBasket(user)
		e.baskets[user] = basket
	}
	basket.Add(product)
	return basket
}

// CreateOrder snapshots the user's basket into a new order with the next
// monotonic id. The basket itself is left untouched.
func (e *Engine) CreateOrder(user *models.User) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	basket, ok := e.baskets[user]
	if !ok {
		return nil, errs.NotFound("basket for user %q", user.Name)
	}

	e.nextOrderID++
	order := models.NewOrder(e.nextOrderID, user, basket.Items)
	e.orders = append(e.orders, order)
	e.log.Log("created order %d for %q", order.ID, user.Name)
	return order, nil
}

// CategoryByID scans the owned collection; a miss fails with the id.
func (e *Engine) CategoryByID(id int64) (*models.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, category := range e.categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, errs.NotFound("category with id = %d", id)
}

// CategoryByName returns the first category with the given name.
func (e *Engine) CategoryByName(name string) (*models.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, category := range e.categories {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, errs.NotFound("category %q", name)
}

func (e *Engine) ProductByID(id int64) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, product := range e.products {
		if product.ID == id {
			return product, nil
		}
	}
	return nil, errs.NotFound("product with id = %d", id)
}

func (e *Engine) ProductByName(name string) (*models.Product, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, product := range e.products {
		if product.Name == name {
			return product, nil
		}
	}
	return nil, errs.NotFound("product %q", name)
}

// UserByName returns the first user of the given kind with the given name.
func (e *Engine) UserByName(kind, name string) (*models.User, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, user := range e.users {
		if user.Kind == models.UserKind(kind) && user.Name == name {
			return user, nil
		}
	}
	return nil, errs.NotFound("%s %q", kind, name)
}

func (e *Engine) OrderByID(id int64) (*models.Order, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, order := range e.orders {
		if order.ID == id {
			return order, nil
		}
	}
	return nil, errs.NotFound("order with id = %d", id)
}

// MainProducts returns the most recently registered products, newest last,
// at most the configured feed size. Fewer products is not an error.
func (e *Engine) MainProducts() []*models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := len(e.products) - e.feedSize
	if start < 0 {
		start = 0
	}
	feed := make([]*models.Product, len(e.products)-start)
	copy(feed, e.products[start:])
	return feed
}

// ProductsByCategory returns every product whose category has the given id,
// in insertion order.
func (e *Engine) ProductsByCategory(id int64) []*models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	var matched []*models.Product
	for _, product := range e.products {
		if product.Category != nil && product.Category.ID == id {
			matched = append(matched, product)
		}
	}
	return matched
}

// AllProducts returns a copy; callers cannot mutate the owned collection.
func (e *Engine) AllProducts() []*models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()

	all := make([]*models.Product, len(e.products))
	copy(all, e.products)
	return all
}

func (e *Engine) AllCategories() []*models.Category {
	e.mu.Lock()
	defer e.mu.Unlock()

	all := make([]*models.Category, len(e.categories))
	copy(all, e.categories)
	return all
}
