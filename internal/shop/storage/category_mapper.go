// Package storage holds the data mappers: stateless translators between
// domain objects and their relational rows over the shared connection.
// Mappers are the only writers of entity ids.
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

// maxParentDepth caps ancestor resolution; the category tree is expected to
// be shallow and acyclic.
const maxParentDepth = 32

type CategoryMapper struct {
	db      *sql.DB
	dialect dbconnect.Dialect
	log     logger.Logger
}

func NewCategoryMapper(db *sql.DB, dialect dbconnect.Dialect, log logger.Logger) *CategoryMapper {
	return &CategoryMapper{db: db, dialect: dialect, log: log}
}

// All returns every category with parent references resolved.
func (m *CategoryMapper) All() ([]*models.Category, error) {
	rows, err := m.db.Query(`SELECT id, name, category_id, "desc", img FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	parents := make(map[int64]int64)
	byID := make(map[int64]*models.Category)

	for rows.Next() {
		category, parentID, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
		byID[category.ID] = category
		if parentID.Valid {
			parents[category.ID] = parentID.Int64
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	for id, parentID := range parents {
		byID[id].Parent = byID[parentID]
	}
	return categories, nil
}

// FindByID reconstructs one category, climbing the parent chain.
func (m *CategoryMapper) FindByID(id int64) (*models.Category, error) {
	return m.findByID(id, 0)
}

func (m *CategoryMapper) findByID(id int64, depth int) (*models.Category, error) {
	if depth > maxParentDepth {
		return nil, fmt.Errorf("category %d: parent chain too deep", id)
	}

	query := fmt.Sprintf(
		`SELECT id, name, category_id, "desc", img FROM category WHERE id = %s`,
		m.dialect.Placeholder(1))
	category, parentID, err := scanCategory(m.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("category with id = %d", id)
	}
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		parent, err := m.findByID(parentID.Int64, depth+1)
		if err != nil {
			return nil, err
		}
		category.Parent = parent
	}
	return category, nil
}

// FindByName returns the first category with the given name, lowest id
// first.
func (m *CategoryMapper) FindByName(name string) (*models.Category, error) {
	query := fmt.Sprintf(
		`SELECT id, name, category_id, "desc", img FROM category WHERE name = %s ORDER BY id LIMIT 1`,
		m.dialect.Placeholder(1))
	category, parentID, err := scanCategory(m.db.QueryRow(query, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NotFound("category %q", name)
	}
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		parent, err := m.findByID(parentID.Int64, 1)
		if err != nil {
			return nil, err
		}
		category.Parent = parent
	}
	return category, nil
}

// Insert writes a new row and assigns the generated id onto the object.
// The mapper is the sole writer of ids: callers must pass an unpersisted
// category (id 0).
func (m *CategoryMapper) Insert(category *models.Category) error {
	parentID := sql.NullInt64{Int64: category.ParentID(), Valid: category.Parent != nil}

	if m.dialect.SupportsReturning() {
		query := fmt.Sprintf(
			`INSERT INTO category (name, category_id, "desc", img) VALUES (%s, %s, %s, %s) RETURNING id`,
			m.dialect.Placeholder(1), m.dialect.Placeholder(2), m.dialect.Placeholder(3), m.dialect.Placeholder(4))
		if err := m.db.QueryRow(query, category.Name, parentID, category.Desc, category.Img).Scan(&category.ID); err != nil {
			return errs.Commit(err)
		}
		return nil
	}

	query := `INSERT INTO category (name, category_id, "desc", img) VALUES (?, ?, ?, ?)`
	result, err := m.db.Exec(query, category.Name, parentID, category.Desc, category.Img)
	if err != nil {
		return errs.Commit(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return errs.Commit(err)
	}
	category.ID = id
	return nil
}

// Update overwrites the full row keyed by id.
func (m *CategoryMapper) Update(category *models.Category) error {
	if category.ID == 0 {
		return errs.Update(fmt.Errorf("category %q has not been persisted", category.Name))
	}
	parentID := sql.NullInt64{Int64: category.ParentID(), Valid: category.Parent != nil}

	query := fmt.Sprintf(
		`UPDATE category SET name = %s, category_id = %s, "desc" = %s, img = %s WHERE id = %s`,
		m.dialect.Placeholder(1), m.dialect.Placeholder(2), m.dialect.Placeholder(3),
		m.dialect.Placeholder(4), m.dialect.Placeholder(5))
	if _, err := m.db.Exec(query, category.Name, parentID, category.Desc, category.Img, category.ID); err != nil {
		return errs.Update(err)
	}
	return nil
}

// Delete removes the row keyed by id. Best effort: a missing row is not an
// error.
func (m *CategoryMapper) Delete(category *models.Category) error {
	query := fmt.Sprintf(`DELETE FROM category WHERE id = %s`, m.dialect.Placeholder(1))
	if _, err := m.db.Exec(query, category.ID); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", category.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCategory(row rowScanner) (*models.Category, sql.NullInt64, error) {
	var category models.Category
	var parentID sql.NullInt64
	err := row.Scan(&category.ID, &category.Name, &parentID, &category.Desc, &category.Img)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, parentID, err
		}
		return nil, parentID, fmt.Errorf("failed to scan category row: %w", err)
	}
	return &category, parentID, nil
}
