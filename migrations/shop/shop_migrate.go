// Package shop holds the relational schema for the store: a category table
// with a nullable self-reference and a product table with a variant
// discriminator. The column named "desc" is quoted everywhere because it is
// a reserved word in both supported dialects.
package shop

import (
	"database/sql"
	"fmt"
	"log"

	"gowebshop/pkg/dbconnect"
)

func checkAndSkipMigration(db *sql.DB, dialect dbconnect.Dialect, name string) (bool, error) {
	var applied bool
	query := fmt.Sprintf(
		"SELECT EXISTS (SELECT 1 FROM shop_migrations WHERE name = %s)",
		dialect.Placeholder(1))
	if err := db.QueryRow(query, name).Scan(&applied); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	if applied {
		log.Printf("Migration '%s' already completed. Skipping.", name)
	}
	return applied, nil
}

func executeAndMarkMigration(db *sql.DB, dialect dbconnect.Dialect, query, name string) error {
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to apply migration '%s': %w", name, err)
	}
	mark := fmt.Sprintf(
		"INSERT INTO shop_migrations (name, applied_at) VALUES (%s, CURRENT_TIMESTAMP)",
		dialect.Placeholder(1))
	if _, err := db.Exec(mark, name); err != nil {
		return fmt.Errorf("failed to mark migration '%s' as complete: %w", name, err)
	}
	return nil
}

type CreateMigrationsTable struct{}

func (m *CreateMigrationsTable) UpMigration(db *sql.DB, dialect dbconnect.Dialect) error {
	query := `
	CREATE TABLE IF NOT EXISTS shop_migrations (
		name VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	);`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create shop_migrations table: %w", err)
	}
	return nil
}

type CreateCategoryTable struct{}

func (m *CreateCategoryTable) UpMigration(db *sql.DB, dialect dbconnect.Dialect) error {
	if ok, err := checkAndSkipMigration(db, dialect, "shop.category"); err != nil {
		return err
	} else if ok {
		return nil
	}
	var query string
	if dialect == dbconnect.Postgres {
		query = `
		CREATE TABLE IF NOT EXISTS category (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category_id INT REFERENCES category(id),
			"desc" TEXT NOT NULL DEFAULT '',
			img VARCHAR(255) NOT NULL DEFAULT ''
		);`
	} else {
		query = `
		CREATE TABLE IF NOT EXISTS category (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL,
			category_id INT REFERENCES category(id),
			"desc" TEXT NOT NULL DEFAULT '',
			img VARCHAR(255) NOT NULL DEFAULT ''
		);`
	}
	if err := executeAndMarkMigration(db, dialect, query, "shop.category"); err != nil {
		return err
	}
	log.Println("Migration 'shop.category' completed successfully.")
	return nil
}

type CreateProductTable struct{}

func (m *CreateProductTable) UpMigration(db *sql.DB, dialect dbconnect.Dialect) error {
	if ok, err := checkAndSkipMigration(db, dialect, "shop.product"); err != nil {
		return err
	} else if ok {
		return nil
	}
	var query string
	if dialect == dbconnect.Postgres {
		query = `
		CREATE TABLE IF NOT EXISTS product (
			id SERIAL PRIMARY KEY,
			product_type VARCHAR(32) NOT NULL,
			name VARCHAR(255) NOT NULL,
			category_id INT REFERENCES category(id),
			price NUMERIC NOT NULL DEFAULT 0,
			"desc" TEXT NOT NULL DEFAULT '',
			img VARCHAR(255) NOT NULL DEFAULT ''
		);`
	} else {
		query = `
		CREATE TABLE IF NOT EXISTS product (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_type VARCHAR(32) NOT NULL,
			name VARCHAR(255) NOT NULL,
			category_id INT REFERENCES category(id),
			price REAL NOT NULL DEFAULT 0,
			"desc" TEXT NOT NULL DEFAULT '',
			img VARCHAR(255) NOT NULL DEFAULT ''
		);`
	}
	if err := executeAndMarkMigration(db, dialect, query, "shop.product"); err != nil {
		return err
	}
	log.Println("Migration 'shop.product' completed successfully.")
	return nil
}
