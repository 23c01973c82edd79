package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Host = "localhost"
	valid.Username = "ledger"
	valid.Database = "ledger"
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing host", func(c *Config) { c.Host = "" }},
		{"bad port", func(c *Config) { c.Port = 70000 }},
		{"missing user", func(c *Config) { c.Username = "" }},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"unknown driver", func(c *Config) { c.Driver = "oracle" }},
		{"sqlite without path", func(c *Config) { c.Driver = DriverSQLite; c.Database = "" }},
		{"postgres without pool", func(c *Config) { c.MaxOpenConns = 0 }},
		{"postgres without idle pool", func(c *Config) { c.MaxIdleConns = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := *valid
			tc.mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestConfigValidateSQLiteIgnoresPoolSize(t *testing.T) {
	config := &Config{
		Driver:       DriverSQLite,
		Database:     ":memory:",
		QueryTimeout: time.Second,
		LogLevel:     "silent",
	}
	assert.NoError(t, config.Validate())
}

func TestConfigDSN(t *testing.T) {
	pg := &Config{Driver: DriverPostgres, Host: "db", Port: 5432, Username: "u", Password: "p", Database: "ledger", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=ledger sslmode=disable", pg.DSN())

	memory := &Config{Driver: DriverSQLite, Database: ":memory:"}
	assert.Equal(t, "file::memory:?cache=shared&_busy_timeout=5000&_fk=1", memory.DSN())

	uri := &Config{Driver: DriverSQLite, Database: "file:abc?mode=memory"}
	assert.Equal(t, "file:abc?mode=memory", uri.DSN())

	path := &Config{Driver: DriverSQLite, Database: "ledger.db"}
	assert.Contains(t, path.DSN(), "file:ledger.db?")

	maxOpen, maxIdle := poolLimits(memory)
	assert.Equal(t, 1, maxOpen)
	assert.Equal(t, 1, maxIdle)
}
