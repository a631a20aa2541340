package postgres

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"gowebshop/config"
	"gowebshop/pkg/dbconnect"
	"gowebshop/pkg/logger"
)

const maxRetries = 10
const dbMaxOpenConns = 20
const retryDelay = 5 * time.Second

type PostgresDatabase struct {
	cfg config.DatabaseConfig
	log logger.Logger
	db  *sql.DB
	mu  sync.Mutex
}

func NewPgConnector(cfg config.DatabaseConfig, log logger.Logger) *PostgresDatabase {
	return &PostgresDatabase{cfg: cfg, log: log}
}

func (pg *PostgresDatabase) Connect() (*sql.DB, error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db != nil {
		return pg.db, nil
	}

	var err error
	conStr := pg.cfg.GetConnectionString()

	for i := 0; i < maxRetries; i++ {
		pg.db, err = sql.Open("postgres", conStr)
		if err != nil {
			pg.log.Log("Failed to open Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		pg.db.SetMaxOpenConns(dbMaxOpenConns)

		if err = pg.db.Ping(); err != nil {
			pg.log.Log("Failed to ping Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			pg.db.Close()
			pg.db = nil
			time.Sleep(retryDelay)
			continue
		}

		pg.log.Log("Successfully connected to Postgres")
		return pg.db, nil
	}
	return nil, err
}

func (pg *PostgresDatabase) Ping() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return fmt.Errorf("database connection is not established")
	}

	if err := pg.db.Ping(); err != nil {
		pg.db.Close()
		pg.db = nil
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

func (pg *PostgresDatabase) Dialect() dbconnect.Dialect {
	return dbconnect.Postgres
}
