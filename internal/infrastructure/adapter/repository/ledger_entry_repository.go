package repository

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/community-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/community-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerEntryRepository implements LedgerEntryRepository interface using GORM
type LedgerEntryRepository struct {
	baseRepository
}

// NewLedgerEntryRepository creates a new LedgerEntryRepository instance
func NewLedgerEntryRepository(db *gorm.DB, logger coreport.Logger) *LedgerEntryRepository {
	return &LedgerEntryRepository{baseRepository: newBaseRepository(db, logger, "ledger_entry")}
}

// entityToModel converts a ledger entry to a database model
func (r *LedgerEntryRepository) entityToModel(entry *entity.LedgerEntry) model.LedgerEntry {
	return model.LedgerEntry{
		UserID:        entry.UserID,
		Kind:          string(entry.Kind),
		PointsDelta:   entry.PointsDelta,
		BalanceAfter:  entry.BalanceAfter,
		ReferenceType: string(entry.ReferenceType),
		ReferenceID:   entry.ReferenceID,
		CreatedAt:     entry.CreatedAt,
		PublishedAt:   entry.PublishedAt,
	}
}

// modelToEntity converts a ledger entry model to an entity
func (r *LedgerEntryRepository) modelToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:            m.ID,
		UserID:        m.UserID,
		Kind:          entity.EntryKind(m.Kind),
		PointsDelta:   m.PointsDelta,
		BalanceAfter:  m.BalanceAfter,
		ReferenceType: entity.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
		PublishedAt:   m.PublishedAt,
	}
}

func (r *LedgerEntryRepository) toEntities(models []model.LedgerEntry) []*entity.LedgerEntry {
	entries := make([]*entity.LedgerEntry, 0, len(models))
	for i := range models {
		entries = append(entries, r.modelToEntity(&models[i]))
	}
	return entries
}

// Append stores a new entry
func (r *LedgerEntryRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	m := r.entityToModel(entry)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("appending ledger entry", err, entry.ReferenceID)
	}
	entry.ID = m.ID

	r.logger.Debug("Ledger entry appended", map[string]any{
		"entry_id":      entry.ID,
		"user_id":       entry.UserID,
		"kind":          entry.Kind,
		"points_delta":  entry.PointsDelta,
		"balance_after": entry.BalanceAfter,
	})
	return nil
}

// ListByUser returns the most recent entries of a user, newest first
func (r *LedgerEntryRepository) ListByUser(ctx context.Context, userID uint64, limit int) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntry
	query := r.conn(ctx).Where("user_id = ?", userID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing ledger entries", err, userID)
	}
	return r.toEntities(models), nil
}

// ClaimUnpublished returns unpublished entries, oldest first.
// Rows locked by a concurrent dispatcher are skipped on PostgreSQL.
func (r *LedgerEntryRepository) ClaimUnpublished(ctx context.Context, limit int) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntry
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("id ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, r.handleDatabaseError("claiming unpublished entries", err, 0)
	}
	return r.toEntities(models), nil
}

// MarkPublished stamps the given entries as delivered
func (r *LedgerEntryRepository) MarkPublished(ctx context.Context, ids []uint64, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.conn(ctx).Model(&model.LedgerEntry{}).
		Where("id IN ?", ids).
		Update("published_at", publishedAt).Error
	if err != nil {
		return r.handleDatabaseError("marking entries published", err, ids[0])
	}
	return nil
}
