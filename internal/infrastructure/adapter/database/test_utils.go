package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/time"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test database manager.
// It defaults to a private in-memory SQLite database; TEST_DB_DRIVER=postgres
// switches to the server described by the TEST_DB_* variables.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:        getEnvOrDefault("TEST_DB_DRIVER", DriverSQLite),
		QueryTimeout:  5 * time.Second,
		LockTimeout:   2 * time.Second,
		LogLevel:      "silent",
		RetryAttempts: 1, // fail fast
		RetryDelay:    time.Second,
	}

	if config.Driver == DriverPostgres {
		config.Host = getEnvOrDefault("TEST_DB_HOST", "localhost")
		config.Port = getEnvIntOrDefault("TEST_DB_PORT", 5432)
		config.Username = getEnvOrDefault("TEST_DB_USERNAME", "postgres")
		config.Password = getEnvOrDefault("TEST_DB_PASSWORD", "postgres")
		config.Database = getEnvOrDefault("TEST_DB_DATABASE", "community_ledger_test")
		config.SSLMode = getEnvOrDefault("TEST_DB_SSL_MODE", "disable")
		config.MaxOpenConns = 20
		config.MaxIdleConns = 10
		config.ConnMaxLifetime = 5 * time.Minute
		config.ConnMaxIdleTime = 5 * time.Minute
	} else {
		// Named shared-cache database so every test gets its own schema
		config.Database = fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000&_fk=1", uuid.NewString())
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewTestDBManagerWithConfig(t, config, logger, timeProvider)
}

// NewTestDBManagerWithConfig creates a test database manager for an explicit configuration
func NewTestDBManagerWithConfig(t *testing.T, config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider, nil),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and registers cleanup
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := m.Manager.Connect()
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { m.Close(t) })

	return db
}

// Close closes the test database connection
func (m *TestDBManager) Close(t *testing.T) {
	t.Helper()

	if err := m.Manager.Close(); err != nil {
		t.Logf("Warning: Failed to close test database connection: %v", err)
	}
}

// SetupTestDB drops every table and runs the full migration
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()

	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}

	if err := m.Manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
}

// dropAllTables drops all tables known to the schema
func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&model.LedgerEntry{},
		&model.Redemption{},
		&model.Enrollment{},
		&model.Product{},
		&model.Activity{},
		&model.User{},
		&model.MigrationVersion{},
	)
}

// TruncateAllTables removes every row while keeping the schema
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	db := m.Manager.DB().Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range []any{
		&model.LedgerEntry{},
		&model.Redemption{},
		&model.Enrollment{},
		&model.Product{},
		&model.Activity{},
		&model.User{},
	} {
		if err := db.Delete(table).Error; err != nil {
			t.Fatalf("Failed to truncate tables: %v", err)
		}
	}
}

// CreateTestUser creates a user with the given balance and returns its ID
func (m *TestDBManager) CreateTestUser(t *testing.T, username string, points int64) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	user := model.User{
		Username:  username,
		Email:     username + "@example.com",
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}

// CreateTestActivity creates an active activity with all seats free and returns its ID
func (m *TestDBManager) CreateTestActivity(t *testing.T, title string, seats int, award int64) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	activity := model.Activity{
		Title:          title,
		Category:       "sport",
		ScheduledAt:    now.Add(72 * time.Hour),
		Location:       "Main Hall",
		TotalSeats:     seats,
		AvailableSeats: seats,
		PointsAward:    award,
		Active:         true,
		CreatedAt:      now,
	}

	if err := m.Manager.DB().Create(&activity).Error; err != nil {
		t.Fatalf("Failed to create test activity: %v", err)
	}
	return activity.ID
}

// CreateTestProduct creates an active product and returns its ID
func (m *TestDBManager) CreateTestProduct(t *testing.T, name string, price int64, stock int) uint64 {
	t.Helper()

	product := model.Product{
		Name:           name,
		PointsRequired: price,
		StockAvailable: stock,
		Active:         true,
		CreatedAt:      m.TimeProvider.Now(),
	}

	if err := m.Manager.DB().Create(&product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product.ID
}

// Deactivate flips the active flag of an activity or product row
func (m *TestDBManager) Deactivate(t *testing.T, table string, id uint64) {
	t.Helper()

	if err := m.Manager.DB().Table(table).Where("id = ?", id).Update("active", false).Error; err != nil {
		t.Fatalf("Failed to deactivate %s %d: %v", table, id, err)
	}
}

// Helper functions to get environment variables or defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
