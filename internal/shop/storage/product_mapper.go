package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"gowebshop/internal/shop/business/errs"
	"gowebshop/internal/shop/business/models"
	"gowebshop/pkg/dbconnect"
	"gowebshop/pkg/logger"
)

type ProductMapper struct {
	db         *sql.DB
	dialect    dbconnect.Dialect
	categories *CategoryMapper
	log        logger.Logger
}

func NewProductMapper(db *sql.DB, dialect dbconnect.Dialect, categories *CategoryMapper, log logger.Logger) *ProductMapper {
	return &ProductMapper{db: db, dialect: dialect, categories: categories, log: log}
}

func (m *ProductMapper) All() ([]*models.Product, error) {
	rows, err := m.db.Query(`SELECT id, product_type, name, category_id, price, "desc", img FROM product ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	categoryCache := make(map[int64]*models.Category)
	var products []*models.Product
	for rows.Next() {
		product, categoryID, err := m.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		if categoryID.Valid {
			if err := m.resolveCategory(product, categoryID.Int64, categoryCache); err != nil {
				return nil, err
			}
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

func (m *ProductMapper) FindByID(id int64) (*models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, product_type, name, category_id, price, "desc", img FROM product WHERE id = %s`,
		m.dialect.Placeholder(1))
	product, categoryID, err := m.scanProduct(m.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("product with id = %d", id)
	}
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		if err := m.resolveCategory(product, categoryID.Int64, nil); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// FindByName returns the first product with the given name, lowest id first.
func (m *ProductMapper) FindByName(name string) (*models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, product_type, name, category_id, price, "desc", img FROM product WHERE name = %s ORDER BY id LIMIT 1`,
		m.dialect.Placeholder(1))
	product, categoryID, err := m.scanProduct(m.db.QueryRow(query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("product %q", name)
	}
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		if err := m.resolveCategory(product, categoryID.Int64, nil); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// FindByCategory returns every product persisted under the category id.
func (m *ProductMapper) FindByCategory(categoryID int64) ([]*models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, product_type, name, category_id, price, "desc", img FROM product WHERE category_id = %s ORDER BY id`,
		m.dialect.Placeholder(1))
	rows, err := m.db.Query(query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query products of category %d: %w", categoryID, err)
	}
	defer rows.Close()

	categoryCache := make(map[int64]*models.Category)
	var products []*models.Product
	for rows.Next() {
		product, catID, err := m.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		if catID.Valid {
			if err := m.resolveCategory(product, catID.Int64, categoryCache); err != nil {
				return nil, err
			}
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// Insert writes a new row and assigns the generated id onto the object.
func (m *ProductMapper) Insert(product *models.Product) error {
	categoryID := sql.NullInt64{Int64: product.CategoryID(), Valid: product.Category != nil}

	if m.dialect.SupportsReturning() {
		query := fmt.Sprintf(
			`INSERT INTO product (product_type, name, category_id, price, "desc", img) VALUES (%s, %s, %s, %s, %s, %s) RETURNING id`,
			m.dialect.Placeholder(1), m.dialect.Placeholder(2), m.dialect.Placeholder(3),
			m.dialect.Placeholder(4), m.dialect.Placeholder(5), m.dialect.Placeholder(6))
		err := m.db.QueryRow(query,
			string(product.Kind), product.Name, categoryID, product.Price, product.Desc, product.Img,
		).Scan(&product.ID)
		if err != nil {
			return errs.Commit(err)
		}
		return nil
	}

	query := `INSERT INTO product (product_type, name, category_id, price, "desc", img) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := m.db.Exec(query,
		string(product.Kind), product.Name, categoryID, product.Price, product.Desc, product.Img)
	if err != nil {
		return errs.Commit(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return errs.Commit(err)
	}
	product.ID = id
	return nil
}

// Update overwrites the full row keyed by id.
func (m *ProductMapper) Update(product *models.Product) error {
	if product.ID == 0 {
		return errs.Update(fmt.Errorf("product %q has not been persisted", product.Name))
	}
	categoryID := sql.NullInt64{Int64: product.CategoryID(), Valid: product.Category != nil}

	query := fmt.Sprintf(
		`UPDATE product SET product_type = %s, name = %s, category_id = %s, price = %s, "desc" = %s, img = %s WHERE id = %s`,
		m.dialect.Placeholder(1), m.dialect.Placeholder(2), m.dialect.Placeholder(3),
		m.dialect.Placeholder(4), m.dialect.Placeholder(5), m.dialect.Placeholder(6),
		m.dialect.Placeholder(7))
	_, err := m.db.Exec(query,
		string(product.Kind), product.Name, categoryID, product.Price, product.Desc, product.Img, product.ID)
	if err != nil {
		return errs.Update(err)
	}
	return nil
}

// Delete removes the row keyed by id, best effort.
func (m *ProductMapper) Delete(product *models.Product) error {
	query := fmt.Sprintf(`DELETE FROM product WHERE id = %s`, m.dialect.Placeholder(1))
	if _, err := m.db.Exec(query, product.ID); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", product.ID, err)
	}
	return nil
}

func (m *ProductMapper) resolveCategory(product *models.Product, id int64, cache map[int64]*models.Category) error {
	if cache != nil {
		if category, ok := cache[id]; ok {
			product.Category = category
			return nil
		}
	}
	category, err := m.categories.FindByID(id)
	if err != nil {
		return err
	}
	if cache != nil {
		cache[id] = category
	}
	product.Category = category
	return nil
}

// scanProduct reconstructs the domain variant from the stored discriminator.
// The set is closed: an unknown product_type in a row is data corruption and
// fails with a validation error.
func (m *ProductMapper) scanProduct(row rowScanner) (*models.Product, sql.NullInt64, error) {
	var (
		product     models.Product
		productType string
		categoryID  sql.NullInt64
	)
	err := row.Scan(&product.ID, &productType, &product.Name, &categoryID,
		&product.Price, &product.Desc, &product.Img)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, categoryID, err
		}
		return nil, categoryID, fmt.Errorf("failed to scan product row: %w", err)
	}

	switch models.ProductKind(productType) {
	case models.ProductReal:
		product.Kind = models.ProductReal
	case models.ProductService:
		product.Kind = models.ProductService
	default:
		return nil, categoryID, errs.Validation("unknown product type %q in row %d", productType, product.ID)
	}
	return &product, categoryID, nil
}
