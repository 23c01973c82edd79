package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "CL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file first
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Println("Warning: no config file for environment", env, "- using defaults and environment")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate reports every missing or invalid required setting at once
func (c *Config) Validate() error {
	var problems []string

	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" {
			problems = append(problems, "database.host is required")
		}
		if c.Database.Username == "" {
			problems = append(problems, "database.username is required")
		}
		if c.Database.Database == "" {
			problems = append(problems, "database.database is required")
		}
	case "sqlite":
		if c.Database.Database == "" {
			problems = append(problems, "database.database is required")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q is not supported", c.Database.Driver))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is invalid", c.Server.Port))
	}
	if c.Auth.Secret == "" {
		problems = append(problems, "auth.secret is required")
	}
	if c.Ledger.MaxRetries < 1 {
		problems = append(problems, "ledger.maxRetries must be at least 1")
	}
	if c.Outbox.Enabled {
		if len(c.Outbox.Brokers) == 0 {
			problems = append(problems, "outbox.brokers is required when the outbox is enabled")
		}
		if c.Outbox.Topic == "" {
			problems = append(problems, "outbox.topic is required when the outbox is enabled")
		}
	}
	if c.Tracing.Enabled && c.Tracing.Exporter == "otlp" && c.Tracing.Endpoint == "" {
		problems = append(problems, "tracing.endpoint is required for the otlp exporter")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("ledger.maxRetries", 5)
	v.SetDefault("ledger.retryIntervalMs", 20)
	v.SetDefault("ledger.maxIntervalMs", 500)
	v.SetDefault("ledger.lockTimeoutMs", 2000)
	v.SetDefault("ledger.seedActivities", false)

	v.SetDefault("auth.issuer", "community-ledger")
	v.SetDefault("auth.tokenTTL", 60) // minutes

	v.SetDefault("outbox.enabled", false)
	v.SetDefault("outbox.topic", "ledger.entries")
	v.SetDefault("outbox.pollInterval", 500) // milliseconds
	v.SetDefault("outbox.batchSize", 100)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.exporter", "stdout")
	v.SetDefault("tracing.serviceName", "community-ledger")
	v.SetDefault("tracing.sampleRatio", 1.0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// getEnvironment determines the environment to use based on CL_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"CL_DB_DRIVER":        "database.driver",
		"CL_DB_HOST":          "database.host",
		"CL_DB_PORT":          "database.port",
		"CL_DB_USERNAME":      "database.username",
		"CL_DB_PASSWORD":      "database.password",
		"CL_DB_NAME":          "database.database",
		"CL_DB_SSL_MODE":      "database.sslMode",
		"CL_SERVER_HOST":      "server.host",
		"CL_SERVER_PORT":      "server.port",
		"CL_LOGGER_LEVEL":     "logger.level",
		"CL_AUTH_SECRET":      "auth.secret",
		"CL_AUTH_ISSUER":      "auth.issuer",
		"CL_OUTBOX_TOPIC":     "outbox.topic",
		"CL_TRACING_EXPORTER": "tracing.exporter",
		"CL_TRACING_ENDPOINT": "tracing.endpoint",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("CL_OUTBOX_BROKERS"); brokers != "" {
		v.Set("outbox.brokers", strings.Split(brokers, ","))
	}
	if enabled, ok := getEnvBool("CL_OUTBOX_ENABLED"); ok {
		v.Set("outbox.enabled", enabled)
	}
	if enabled, ok := getEnvBool("CL_TRACING_ENABLED"); ok {
		v.Set("tracing.enabled", enabled)
	}
	if seed, ok := getEnvBool("CL_LEDGER_SEED_ACTIVITIES"); ok {
		v.Set("ledger.seedActivities", seed)
	}

	if maxOpenConns := getEnvInt("CL_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("CL_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("CL_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("CL_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if maxRetries := getEnvInt("CL_LEDGER_MAX_RETRIES", 0); maxRetries > 0 {
		v.Set("ledger.maxRetries", maxRetries)
	}
	if lockTimeout := getEnvInt("CL_LEDGER_LOCK_TIMEOUT_MS", 0); lockTimeout > 0 {
		v.Set("ledger.lockTimeoutMs", lockTimeout)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvBool(name string) (bool, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return false, false
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, false
	}
	return val, true
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
	config.Outbox.PollInterval = time.Duration(config.Outbox.PollInterval) * time.Millisecond
}
