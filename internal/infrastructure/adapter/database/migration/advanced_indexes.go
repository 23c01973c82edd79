package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific constraints and indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type checkConstraint struct {
	table      string
	name       string
	expression string
}

var checkConstraints = []checkConstraint{
	{"users", "chk_users_points_non_negative", "points >= 0"},
	{"activities", "chk_activities_total_seats", "total_seats >= 1"},
	{"activities", "chk_activities_available_seats", "available_seats >= 0 AND available_seats <= total_seats"},
	{"activities", "chk_activities_points_award", "points_award >= 0"},
	{"products", "chk_products_points_required", "points_required >= 1"},
	{"products", "chk_products_stock_non_negative", "stock_available >= 0"},
	{"enrollments", "chk_enrollments_status", "status IN ('confirmed', 'cancelled', 'attended', 'absent')"},
}

// CreateConstraints adds the CHECK constraints backing the domain invariants
func (m *AdvancedIndexManager) CreateConstraints(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL check constraints", nil)

	for _, c := range checkConstraints {
		// ADD CONSTRAINT has no IF NOT EXISTS, so guard with the catalog
		stmt := `
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + c.name + `') THEN
					ALTER TABLE ` + c.table + ` ADD CONSTRAINT ` + c.name + ` CHECK (` + c.expression + `);
				END IF;
			END $$;`
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to create check constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	return nil
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	// BRIN suits the append-only ledger ordered by time
	if err := m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_ledger_entries_created_at_brin
		ON ledger_entries USING BRIN (created_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on ledger_entries.created_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_enrollments_confirmed
		ON enrollments (activity_id)
		WHERE status = 'confirmed'
	`).Error; err != nil {
		m.logger.Error("Failed to create confirmed enrollments partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.db.WithContext(ctx).Exec(`
		CREATE INDEX IF NOT EXISTS idx_redemptions_undelivered
		ON redemptions (redeemed_at)
		WHERE NOT delivered
	`).Error; err != nil {
		m.logger.Error("Failed to create undelivered redemptions partial index", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks; failures are only logged
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Hot rows (seat and stock counters, balances) are updated in place
	for _, table := range []string{"users", "activities", "products"} {
		if err := m.db.WithContext(ctx).Exec("ALTER TABLE " + table + " SET (fillfactor = 90)").Error; err != nil {
			m.logger.Warn("Failed to set fillfactor", map[string]any{
				"table": table,
				"error": err.Error(),
			})
		}
	}
}
