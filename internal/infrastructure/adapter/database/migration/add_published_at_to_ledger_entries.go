package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AddPublishedAtToLedgerEntries upgrades 1.0.0 schemas, which predate the event stream.
// Entries written before the upgrade are stamped as published so they are not replayed.
type AddPublishedAtToLedgerEntries struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddPublishedAtToLedgerEntries creates a new migration instance
func NewAddPublishedAtToLedgerEntries(db *gorm.DB, logger coreport.Logger) *AddPublishedAtToLedgerEntries {
	return &AddPublishedAtToLedgerEntries{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddPublishedAtToLedgerEntries) Run(ctx context.Context) error {
	m.logger.Info("Adding published_at column to ledger_entries table", nil)

	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	if !migrator.HasColumn(&model.LedgerEntry{}, "PublishedAt") {
		if err := migrator.AddColumn(&model.LedgerEntry{}, "PublishedAt"); err != nil {
			m.logger.Error("Failed to add published_at column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := db.Model(&model.LedgerEntry{}).
		Where("published_at IS NULL").
		Update("published_at", gorm.Expr("created_at"))
	if result.Error != nil {
		m.logger.Error("Failed to backfill published_at", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Successfully added published_at column to ledger_entries table", map[string]any{
		"backfilled": result.RowsAffected,
	})
	return nil
}
