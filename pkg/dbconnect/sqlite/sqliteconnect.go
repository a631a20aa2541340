// Package sqlite provides an embedded store for dev setups and tests, driven
// through the same Database interface as the postgres connector.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"gowebshop/pkg/dbconnect"
)

type SqliteDatabase struct {
	path string
	db   *sql.DB
	mu   sync.Mutex
}

// NewSqliteConnector opens path on first Connect. Use ":memory:" for a
// throwaway database.
func NewSqliteConnector(path string) *SqliteDatabase {
	return &SqliteDatabase{path: path}
}

func (s *SqliteDatabase) Connect() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// modernc/sqlite serializes access itself; a second connection to
	// :memory: would see a different database.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	s.db = db
	return s.db, nil
}

func (s *SqliteDatabase) Ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return fmt.Errorf("database connection is not established")
	}
	return s.db.Ping()
}

func (s *SqliteDatabase) Dialect() dbconnect.Dialect {
	return dbconnect.SQLite
}
