package migration

import (
	"database/sql"

	"gowebshop/pkg/dbconnect"
)

// MigrationInterface is implemented by every schema migration; migrations
// are applied in order at server start-up.
type MigrationInterface interface {
	UpMigration(db *sql.DB, dialect dbconnect.Dialect) error
}
