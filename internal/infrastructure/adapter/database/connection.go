package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openDialector returns the GORM dialector for the configured driver
func openDialector(config *Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

// poolLimits returns the connection limits for the driver.
// SQLite allows a single writer, so its pool is pinned to one connection.
func poolLimits(config *Config) (maxOpen, maxIdle int) {
	if config.Driver == DriverSQLite {
		return 1, 1
	}
	return config.MaxOpenConns, config.MaxIdleConns
}

// IsPostgres reports whether db talks to PostgreSQL
func IsPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == DriverPostgres
}
