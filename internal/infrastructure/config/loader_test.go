package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_TestEnvironment(t *testing.T) {
	t.Setenv("CL_ENV", "TEST")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.Database)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.False(t, cfg.Outbox.Enabled)

	// Durations come back scaled to their units
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Outbox.PollInterval)
	assert.Equal(t, int64(500), cfg.Ledger.LockTimeoutMs)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("CL_ENV", "test")
	t.Setenv("CL_SERVER_PORT", "9090")
	t.Setenv("CL_AUTH_SECRET", "from-env")
	t.Setenv("CL_OUTBOX_ENABLED", "true")
	t.Setenv("CL_OUTBOX_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CL_LEDGER_MAX_RETRIES", "9")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Auth.Secret)
	assert.True(t, cfg.Outbox.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Outbox.Brokers)
	assert.Equal(t, "ledger.entries", cfg.Outbox.Topic)
	assert.Equal(t, 9, cfg.Ledger.MaxRetries)
}

func TestLoadConfig_NoConfigFileUsesDefaults(t *testing.T) {
	t.Setenv("CL_ENV", "staging")
	t.Setenv("CL_AUTH_SECRET", "secret")
	t.Setenv("CL_DB_DRIVER", "sqlite")
	t.Setenv("CL_DB_NAME", ":memory:")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Ledger.MaxRetries)
	assert.Equal(t, "community-ledger", cfg.Auth.Issuer)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_MissingSecretFails(t *testing.T) {
	t.Setenv("CL_AUTH_SECRET", "")
	t.Setenv("CL_ENV", "staging")
	t.Setenv("CL_DB_DRIVER", "sqlite")
	t.Setenv("CL_DB_NAME", ":memory:")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.secret is required")
}

func validConfig() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "postgres", Host: "db", Username: "ledger", Database: "ledger"},
		Auth:     AuthConfig{Secret: "secret"},
		Ledger:   LedgerConfig{MaxRetries: 3},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unsupported driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: `database.driver "mysql" is not supported`,
		},
		{
			name:    "postgres without host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: "database.host is required",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server.port 70000 is invalid",
		},
		{
			name:    "no retries",
			mutate:  func(c *Config) { c.Ledger.MaxRetries = 0 },
			wantErr: "ledger.maxRetries must be at least 1",
		},
		{
			name:    "outbox without brokers",
			mutate:  func(c *Config) { c.Outbox = OutboxConfig{Enabled: true, Topic: "t"} },
			wantErr: "outbox.brokers is required",
		},
		{
			name:    "otlp without endpoint",
			mutate:  func(c *Config) { c.Tracing = TracingConfig{Enabled: true, Exporter: "otlp"} },
			wantErr: "tracing.endpoint is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Driver: "sqlite"}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.database is required")
	assert.Contains(t, err.Error(), "server.port 0 is invalid")
	assert.Contains(t, err.Error(), "auth.secret is required")
}
