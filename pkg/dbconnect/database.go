package dbconnect

import "database/sql"

// Database is the process-wide persistence collaborator shared by every
// mapper. Connect is idempotent: the first call opens the handle, later
// calls return the same one.
type Database interface {
	Connect() (*sql.DB, error)
	Ping() error
	Dialect() Dialect
}
