package database

import (
	"fmt"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/config"
)

// CreateConfigFromViperConfig adapts the global configuration to database configuration
func CreateConfigFromViperConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()

	if conf.Database.Driver != "" {
		dbConf.Driver = conf.Database.Driver
	}
	dbConf.Host = conf.Database.Host
	if port := ParsePort(conf.Database.Port); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = conf.Database.Username
	dbConf.Password = conf.Database.Password
	dbConf.Database = conf.Database.Database

	if conf.Database.SSLMode != "" {
		dbConf.SSLMode = conf.Database.SSLMode
	}
	if conf.Database.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = conf.Database.MaxOpenConns
	}
	if conf.Database.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = conf.Database.MaxIdleConns
	}
	if conf.Database.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = conf.Database.ConnMaxLifetime
	}
	if conf.Database.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = conf.Database.ConnMaxIdleTime
	}
	if conf.Database.QueryTimeout > 0 {
		dbConf.QueryTimeout = conf.Database.QueryTimeout
	}
	if conf.Database.RetryAttempts >= 0 {
		dbConf.RetryAttempts = conf.Database.RetryAttempts
	}
	if conf.Database.RetryDelay > 0 {
		dbConf.RetryDelay = conf.Database.RetryDelay
	}
	if conf.Database.LogLevel != "" {
		dbConf.LogLevel = conf.Database.LogLevel
	}
	if conf.Ledger.LockTimeoutMs > 0 {
		dbConf.LockTimeout = time.Duration(conf.Ledger.LockTimeoutMs) * time.Millisecond
	}

	return dbConf
}

// RetryConfigFromViperConfig builds the ledger retry policy from the global configuration
func RetryConfigFromViperConfig(conf *config.Config) RetryConfig {
	retry := DefaultRetryConfig()
	if conf.Ledger.MaxRetries > 0 {
		retry.MaxRetries = conf.Ledger.MaxRetries
	}
	if conf.Ledger.RetryIntervalMs > 0 {
		retry.RetryInterval = time.Duration(conf.Ledger.RetryIntervalMs) * time.Millisecond
	}
	if conf.Ledger.MaxIntervalMs > 0 {
		retry.MaxInterval = time.Duration(conf.Ledger.MaxIntervalMs) * time.Millisecond
	}
	return retry
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}
