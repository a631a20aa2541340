package config

// DatabaseConfig is satisfied by any block that can produce a driver
// connection string.
type DatabaseConfig interface {
	GetConnectionString() string
}
