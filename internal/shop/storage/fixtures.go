package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gowebshop/internal/shop/business/engine"
	"gowebshop/pkg/logger"
)

// Hydrate registers every persisted category and product with the engine.
// Called once at start-up so in-memory lookups see what earlier runs wrote.
func Hydrate(eng *engine.Engine, categories *CategoryMapper, products *ProductMapper) error {
	cats, err := categories.All()
	if err != nil {
		return fmt.Errorf("failed to hydrate categories: %w", err)
	}
	for _, category := range cats {
		eng.RegisterCategory(category)
	}

	prods, err := products.All()
	if err != nil {
		return fmt.Errorf("failed to hydrate products: %w", err)
	}
	for _, product := range prods {
		eng.RegisterProduct(product)
	}
	return nil
}

type categoryFixture struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

type productFixture struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ProductType string  `json:"product_type"`
}

// FixtureLoader fills the store from the json files shipped with the app.
type FixtureLoader struct {
	eng        *engine.Engine
	categories *CategoryMapper
	products   *ProductMapper
	log        logger.Logger
	dir        string
}

func NewFixtureLoader(eng *engine.Engine, categories *CategoryMapper, products *ProductMapper,
	log logger.Logger, dir string) *FixtureLoader {
	return &FixtureLoader{eng: eng, categories: categories, products: products, log: log, dir: dir}
}

// LoadCategories creates and persists every category from category.json.
func (l *FixtureLoader) LoadCategories() (int, error) {
	var fixtures []categoryFixture
	if err := l.readJSON("category.json", &fixtures); err != nil {
		return 0, err
	}

	for _, fixture := range fixtures {
		category := l.eng.CreateCategory(fixture.Name, nil, fixture.Desc, "")
		if err := l.categories.Insert(category); err != nil {
			return 0, err
		}
		l.log.Log("loaded category %q", fixture.Name)
	}
	return len(fixtures), nil
}

// LoadProducts creates and persists every product from products.json,
// resolving categories by name against the engine.
func (l *FixtureLoader) LoadProducts() (int, error) {
	var fixtures []productFixture
	if err := l.readJSON("products.json", &fixtures); err != nil {
		return 0, err
	}

	for _, fixture := range fixtures {
		category, err := l.eng.CategoryByName(fixture.Category)
		if err != nil {
			return 0, err
		}
		product, err := l.eng.CreateProduct(fixture.ProductType, fixture.Name, category, fixture.Price)
		if err != nil {
			return 0, err
		}
		if err := l.products.Insert(product); err != nil {
			return 0, err
		}
		l.log.Log("loaded product %q", fixture.Name)
	}
	return len(fixtures), nil
}

func (l *FixtureLoader) readJSON(name string, dest interface{}) error {
	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return nil
}
