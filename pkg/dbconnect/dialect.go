package dbconnect

import "strconv"

// Dialect captures the placeholder and id-generation differences between the
// supported drivers, so the mappers can run unchanged against postgres in
// production and embedded sqlite in dev and tests.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

// Placeholder returns the parameter marker for the n-th argument (1-based).
func (d Dialect) Placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// SupportsReturning reports whether INSERT ... RETURNING id is available.
// Without it the mappers fall back to LastInsertId.
func (d Dialect) SupportsReturning() bool {
	return d == Postgres
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}
