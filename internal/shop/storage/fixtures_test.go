package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gowebshop/internal/shop/business/engine"
	"gowebshop/internal/shop/business/models"
	"gowebshop/pkg/logger"
)

func TestFixtureLoader(t *testing.T) {
	categories, products := testMappers(t)
	eng := engine.NewEngine(logger.NewLogger(io.Discard, "[engine]"), 3)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "category.json"),
		[]byte(`[{"name": "Phones"}, {"name": "Services", "desc": "things we do"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"),
		[]byte(`[
			{"name": "Phone", "category": "Phones", "price": 100, "product_type": "product"},
			{"name": "Setup", "category": "Services", "price": 10, "product_type": "service"}
		]`), 0o644))

	loader := NewFixtureLoader(eng, categories, products, logger.NewLogger(io.Discard, "[fixtures]"), dir)

	n, err := loader.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = loader.LoadProducts()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// both the engine and the store see the data
	phone, err := eng.ProductByName("Phone")
	require.NoError(t, err)
	assert.NotZero(t, phone.ID)

	stored, err := products.FindByName("Setup")
	require.NoError(t, err)
	assert.Equal(t, models.ProductService, stored.Kind)
}

func TestFixtureLoaderUnknownCategory(t *testing.T) {
	categories, products := testMappers(t)
	eng := engine.NewEngine(logger.NewLogger(io.Discard, "[engine]"), 3)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"),
		[]byte(`[{"name": "Phone", "category": "Nope", "price": 100, "product_type": "product"}]`), 0o644))

	loader := NewFixtureLoader(eng, categories, products, logger.NewLogger(io.Discard, "[fixtures]"), dir)

	_, err := loader.LoadProducts()
	require.Error(t, err)
}

func TestHydrate(t *testing.T) {
	categories, products := testMappers(t)

	phones := &models.Category{Name: "Phones"}
	require.NoError(t, categories.Insert(phones))
	require.NoError(t, products.Insert(
		&models.Product{Kind: models.ProductReal, Name: "Phone", Category: phones, Price: 100}))

	eng := engine.NewEngine(logger.NewLogger(io.Discard, "[engine]"), 3)
	require.NoError(t, Hydrate(eng, categories, products))

	category, err := eng.CategoryByName("Phones")
	require.NoError(t, err)
	assert.Equal(t, phones.ID, category.ID)

	product, err := eng.ProductByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Phone", product.Name)
}
