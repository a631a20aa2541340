package engine

import (
	"gowebshop/internal/shop/business/errs"
	"gowebshop/internal/shop/business/models"
)

// The variant sets are closed: creation goes through these maps and any
// unknown discriminator is rejected instead of silently defaulting.

var userFactories = map[models.UserKind]func(name, password string) *models.User{
	models.UserBuyer: func(name, password string) *models.User {
		return &models.User{Kind: models.UserBuyer, Name: name, Password: password}
	},
	models.UserStaff: func(name, password string) *models.User {
		return &models.User{Kind: models.UserStaff, Name: name, Password: password}
	},
}

var productFactories = map[models.ProductKind]func(name string, category *models.Category, price float64) *models.Product{
	models.ProductReal: func(name string, category *models.Category, price float64) *models.Product {
		return &models.Product{Kind: models.ProductReal, Name: name, Category: category, Price: price}
	},
	models.ProductService: func(name string, category *models.Category, price float64) *models.Product {
		return &models.Product{Kind: models.ProductService, Name: name, Category: category, Price: price}
	},
}

func newUser(kind, name, password string) (*models.User, error) {
	factory, ok := userFactories[models.UserKind(kind)]
	if !ok {
		return nil, errs.Validation("unknown user type %q", kind)
	}
	return factory(name, password), nil
}

func newProduct(kind, name string, category *models.Category, price float64) (*models.Product, error) {
	factory, ok := productFactories[models.ProductKind(kind)]
	if !ok {
		return nil, errs.Validation("unknown product type %q", kind)
	}
	return factory(name, category, price), nil
}
